package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/openpress/blog-system/internal/core/domain"
	"github.com/openpress/blog-system/internal/core/ports"
)

// stubPostRepo mimics the document store: newest-first listing and
// set-semantics like toggling.
type stubPostRepo struct {
	posts  []*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{}
}

func (r *stubPostRepo) find(id string) *domain.Post {
	for _, p := range r.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func clonePost(p *domain.Post) *domain.Post {
	clone := *p
	clone.Likes = append([]string{}, p.Likes...)
	clone.Comments = append([]domain.Comment{}, p.Comments...)
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.nextID++
	created := clonePost(post)
	created.ID = fmt.Sprintf("post_%d", r.nextID)
	// Prepend: the store lists newest first.
	r.posts = append([]*domain.Post{created}, r.posts...)
	return clonePost(created), nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p := r.find(id)
	if p == nil {
		return nil, domain.ErrPostNotFound
	}
	return clonePost(p), nil
}

func (r *stubPostRepo) List(_ context.Context, page, limit int) ([]*domain.Post, int64, error) {
	start := (page - 1) * limit
	if start >= len(r.posts) {
		return nil, int64(len(r.posts)), nil
	}
	end := start + limit
	if end > len(r.posts) {
		end = len(r.posts)
	}
	out := make([]*domain.Post, 0, end-start)
	for _, p := range r.posts[start:end] {
		out = append(out, clonePost(p))
	}
	return out, int64(len(r.posts)), nil
}

func (r *stubPostRepo) Update(_ context.Context, id string, fields ports.UpdatePostFields) (*domain.Post, error) {
	p := r.find(id)
	if p == nil {
		return nil, domain.ErrPostNotFound
	}
	if fields.Title != nil {
		p.Title = *fields.Title
	}
	if fields.Content != nil {
		p.Content = *fields.Content
	}
	return clonePost(p), nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return domain.ErrPostNotFound
}

func (r *stubPostRepo) ToggleLike(_ context.Context, id, userID string) (bool, error) {
	p := r.find(id)
	if p == nil {
		return false, domain.ErrPostNotFound
	}
	for i, u := range p.Likes {
		if u == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return false, nil
		}
	}
	p.Likes = append(p.Likes, userID)
	return true, nil
}

func (r *stubPostRepo) AddComment(_ context.Context, id string, comment domain.Comment) error {
	p := r.find(id)
	if p == nil {
		return domain.ErrPostNotFound
	}
	p.Comments = append(p.Comments, comment)
	return nil
}

type staticUserRepo struct {
	names map[string]string
}

func (r *staticUserRepo) Create(_ context.Context, _ *domain.User) (*domain.User, error) {
	return nil, domain.ErrUserExists
}

func (r *staticUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *staticUserRepo) UsernamesByID(_ context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	for _, id := range ids {
		if n, ok := r.names[id]; ok {
			names[id] = n
		}
	}
	return names, nil
}

type captureRecorder struct {
	inputs []ports.ActivityInput
}

func (c *captureRecorder) Enqueue(in ports.ActivityInput) {
	c.inputs = append(c.inputs, in)
}

func newPostService(repo *stubPostRepo) (*PostService, *captureRecorder) {
	users := &staticUserRepo{names: map[string]string{
		"userA": "alice",
		"userB": "bob",
	}}
	rec := &captureRecorder{}
	return NewPostService(repo, users, rec, zerolog.Nop()), rec
}

func TestPostService_Create(t *testing.T) {
	repo := newStubPostRepo()
	svc, rec := newPostService(repo)

	detail, err := svc.Create(context.Background(), "userA", ports.CreatePostInput{Title: "Hello", Content: "World"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if detail.AuthorID != "userA" || detail.AuthorUsername != "alice" {
		t.Fatalf("unexpected author: %s/%s", detail.AuthorID, detail.AuthorUsername)
	}
	if len(detail.Likes) != 0 || len(detail.Comments) != 0 {
		t.Fatalf("new post should have empty likes and comments")
	}
	if detail.ID == "" || detail.CreatedAt.IsZero() {
		t.Fatalf("expected generated id and timestamps")
	}
	if len(rec.inputs) != 1 || rec.inputs[0].Action != domain.ActivityCreated {
		t.Fatalf("expected one created activity, got %+v", rec.inputs)
	}
}

func TestPostService_Create_Validation(t *testing.T) {
	repo := newStubPostRepo()
	svc, _ := newPostService(repo)

	if _, err := svc.Create(context.Background(), "userA", ports.CreatePostInput{Title: "", Content: "x"}); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for empty title, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "userA", ports.CreatePostInput{Title: "x", Content: ""}); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for empty content, got %v", err)
	}
}

func TestPostService_Update_OwnershipAndPartial(t *testing.T) {
	repo := newStubPostRepo()
	svc, _ := newPostService(repo)

	created, err := svc.Create(context.Background(), "userA", ports.CreatePostInput{Title: "Hello", Content: "World"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Non-owner is forbidden regardless of payload.
	title := "Hijacked"
	if _, err := svc.Update(context.Background(), "userB", created.ID, ports.UpdatePostFields{Title: &title}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Owner: absent content keeps its value.
	newTitle := "Hello v2"
	updated, err := svc.Update(context.Background(), "userA", created.ID, ports.UpdatePostFields{Title: &newTitle})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Hello v2" || updated.Content != "World" {
		t.Fatalf("partial update wrong: %q / %q", updated.Title, updated.Content)
	}

	// Present-but-empty is a validation error, not "clear the field".
	empty := ""
	if _, err := svc.Update(context.Background(), "userA", created.ID, ports.UpdatePostFields{Content: &empty}); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for empty field, got %v", err)
	}

	if _, err := svc.Update(context.Background(), "userA", "missing", ports.UpdatePostFields{Title: &newTitle}); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Delete_Ownership(t *testing.T) {
	repo := newStubPostRepo()
	svc, _ := newPostService(repo)

	created, _ := svc.Create(context.Background(), "userA", ports.CreatePostInput{Title: "Hello", Content: "World"})

	if err := svc.Delete(context.Background(), "userB", created.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), "userA", created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}
}

func TestPostService_ToggleLike_Involution(t *testing.T) {
	repo := newStubPostRepo()
	svc, _ := newPostService(repo)

	created, _ := svc.Create(context.Background(), "userA", ports.CreatePostInput{Title: "Hello", Content: "World"})

	// Any authenticated user may like any post, owner or not.
	res, err := svc.ToggleLike(context.Background(), "userB", created.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !res.Liked {
		t.Fatalf("expected liked=true on first toggle")
	}

	detail, _ := svc.Get(context.Background(), created.ID)
	if len(detail.Likes) != 1 || detail.Likes[0] != "userB" {
		t.Fatalf("unexpected likes: %v", detail.Likes)
	}

	res, err = svc.ToggleLike(context.Background(), "userB", created.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if res.Liked {
		t.Fatalf("expected liked=false on second toggle")
	}

	detail, _ = svc.Get(context.Background(), created.ID)
	if len(detail.Likes) != 0 {
		t.Fatalf("likes set not restored: %v", detail.Likes)
	}

	if _, err := svc.ToggleLike(context.Background(), "userB", "missing"); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_AddComment(t *testing.T) {
	repo := newStubPostRepo()
	svc, _ := newPostService(repo)

	created, _ := svc.Create(context.Background(), "userA", ports.CreatePostInput{Title: "Hello", Content: "World"})

	// Commenting is not owner-restricted.
	comment, err := svc.AddComment(context.Background(), "userB", created.ID, "nice post")
	if err != nil {
		t.Fatalf("add comment failed: %v", err)
	}
	if comment.AuthorID != "userB" || comment.AuthorUsername != "bob" {
		t.Fatalf("unexpected comment author: %+v", comment)
	}
	if comment.CreatedAt.IsZero() {
		t.Fatalf("expected comment timestamp")
	}

	if _, err := svc.AddComment(context.Background(), "userB", created.ID, ""); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for empty content, got %v", err)
	}

	detail, _ := svc.Get(context.Background(), created.ID)
	if len(detail.Comments) != 1 || detail.Comments[0].Content != "nice post" {
		t.Fatalf("unexpected comments: %+v", detail.Comments)
	}
}

func TestPostService_List_Pagination(t *testing.T) {
	repo := newStubPostRepo()
	svc, _ := newPostService(repo)

	for i := 0; i < 12; i++ {
		if _, err := svc.Create(context.Background(), "userA", ports.CreatePostInput{
			Title:   fmt.Sprintf("post %d", i),
			Content: "body",
		}); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	result, err := svc.List(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.TotalCount != 12 || result.TotalPages != 3 {
		t.Fatalf("expected 12 posts over 3 pages, got %d/%d", result.TotalCount, result.TotalPages)
	}
	if !result.HasNextPage {
		t.Fatalf("expected hasNextPage=true on page 2 of 3")
	}
	if len(result.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(result.Items))
	}
	// Newest first: page 2 holds the 6th..10th most recent.
	if result.Items[0].Title != "post 6" {
		t.Fatalf("unexpected first item on page 2: %s", result.Items[0].Title)
	}

	last, err := svc.List(context.Background(), 3, 5)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if last.HasNextPage || len(last.Items) != 2 {
		t.Fatalf("unexpected last page: hasNext=%v items=%d", last.HasNextPage, len(last.Items))
	}
}

func TestPostService_List_Defaults(t *testing.T) {
	repo := newStubPostRepo()
	svc, _ := newPostService(repo)

	result, err := svc.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.CurrentPage != 1 || result.PageSize != 10 {
		t.Fatalf("expected defaults 1/10, got %d/%d", result.CurrentPage, result.PageSize)
	}
}
