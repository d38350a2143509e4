package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/openpress/blog-system/internal/core/domain"
	"github.com/openpress/blog-system/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// PostService orchestrates post operations against the post and user
// repositories, applying the ownership policy to update and delete.
type PostService struct {
	posts    ports.PostRepository
	users    ports.UserRepository
	activity ports.ActivityRecorder
	log      zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, activity ports.ActivityRecorder, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, activity: activity, log: log}
}

// Create persists a new post authored by the caller.
func (s *PostService) Create(ctx context.Context, callerID string, input ports.CreatePostInput) (*ports.PostDetail, error) {
	if input.Title == "" || input.Content == "" {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:     input.Title,
		Content:   input.Content,
		Author:    callerID,
		Likes:     []string{},
		Comments:  []domain.Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.record(created.ID, callerID, domain.ActivityCreated)
	s.log.Info().Str("post_id", created.ID).Str("author", callerID).Msg("post created")

	return s.toDetail(ctx, created), nil
}

// List returns one page of posts, newest first. Page and limit fall back
// to 1 and 10; a limit above maxLimit is capped.
func (s *PostService) List(ctx context.Context, page, limit int) (*ports.ListPostsResult, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	posts, total, err := s.posts.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	names := s.resolveAuthors(ctx, posts)

	items := make([]ports.PostSummary, 0, len(posts))
	for _, p := range posts {
		items = append(items, ports.PostSummary{
			ID:             p.ID,
			Title:          p.Title,
			Content:        p.Content,
			AuthorID:       p.Author,
			AuthorUsername: names[p.Author],
			LikeCount:      len(p.Likes),
			CommentCount:   len(p.Comments),
			CreatedAt:      p.CreatedAt,
			UpdatedAt:      p.UpdatedAt,
		})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListPostsResult{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		PageSize:    limit,
		HasNextPage: page < totalPages,
	}, nil
}

// Get returns the full post with author and comment authors resolved.
func (s *PostService) Get(ctx context.Context, id string) (*ports.PostDetail, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDetail(ctx, post), nil
}

// Update applies a partial update after the ownership check. Nil fields
// keep their current value; empty values were rejected at the boundary.
func (s *PostService) Update(ctx context.Context, callerID, id string, fields ports.UpdatePostFields) (*ports.PostDetail, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutate(callerID, post.Author) {
		return nil, domain.ErrForbidden
	}
	if (fields.Title != nil && *fields.Title == "") || (fields.Content != nil && *fields.Content == "") {
		return nil, domain.ErrValidation
	}

	updated, err := s.posts.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.record(id, callerID, domain.ActivityUpdated)
	s.log.Info().Str("post_id", id).Str("caller", callerID).Msg("post updated")
	return s.toDetail(ctx, updated), nil
}

// Delete removes the post and its embedded comments after the ownership
// check.
func (s *PostService) Delete(ctx context.Context, callerID, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanMutate(callerID, post.Author) {
		return domain.ErrForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.record(id, callerID, domain.ActivityDeleted)
	s.log.Info().Str("post_id", id).Str("caller", callerID).Msg("post deleted")
	return nil
}

// ToggleLike flips the caller's membership in the likes set. Any
// authenticated user may like any post; two consecutive calls restore
// the original set.
func (s *PostService) ToggleLike(ctx context.Context, callerID, id string) (*ports.ToggleLikeResult, error) {
	liked, err := s.posts.ToggleLike(ctx, id, callerID)
	if err != nil {
		return nil, err
	}

	if liked {
		s.record(id, callerID, domain.ActivityLiked)
	} else {
		s.record(id, callerID, domain.ActivityUnliked)
	}
	return &ports.ToggleLikeResult{Liked: liked}, nil
}

// AddComment appends a comment authored by the caller. Not
// owner-restricted.
func (s *PostService) AddComment(ctx context.Context, callerID, id, content string) (*ports.CommentView, error) {
	if content == "" {
		return nil, domain.ErrValidation
	}

	comment := domain.Comment{
		Content:   content,
		Author:    callerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.AddComment(ctx, id, comment); err != nil {
		return nil, err
	}

	s.record(id, callerID, domain.ActivityCommented)

	names := s.usernames(ctx, []string{callerID})
	return &ports.CommentView{
		Content:        comment.Content,
		AuthorID:       comment.Author,
		AuthorUsername: names[comment.Author],
		CreatedAt:      comment.CreatedAt,
	}, nil
}

func (s *PostService) record(postID, actorID string, action domain.ActivityAction) {
	if s.activity == nil {
		return
	}
	s.activity.Enqueue(ports.ActivityInput{
		PostID:    postID,
		ActorID:   actorID,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}

func (s *PostService) toDetail(ctx context.Context, p *domain.Post) *ports.PostDetail {
	ids := make([]string, 0, 1+len(p.Comments))
	ids = append(ids, p.Author)
	for _, c := range p.Comments {
		ids = append(ids, c.Author)
	}
	names := s.usernames(ctx, ids)

	comments := make([]ports.CommentView, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, ports.CommentView{
			Content:        c.Content,
			AuthorID:       c.Author,
			AuthorUsername: names[c.Author],
			CreatedAt:      c.CreatedAt,
		})
	}

	likes := p.Likes
	if likes == nil {
		likes = []string{}
	}

	return &ports.PostDetail{
		ID:             p.ID,
		Title:          p.Title,
		Content:        p.Content,
		AuthorID:       p.Author,
		AuthorUsername: names[p.Author],
		Likes:          likes,
		Comments:       comments,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (s *PostService) resolveAuthors(ctx context.Context, posts []*domain.Post) map[string]string {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.Author)
	}
	return s.usernames(ctx, ids)
}

// usernames resolves ids to display names. Resolution failure degrades to
// blank usernames rather than failing the read.
func (s *PostService) usernames(ctx context.Context, ids []string) map[string]string {
	names, err := s.users.UsernamesByID(ctx, ids)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to resolve author usernames")
		return map[string]string{}
	}
	return names
}
