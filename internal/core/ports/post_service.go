package ports

import (
	"context"
	"time"
)

// CreatePostInput carries the data needed to create a post.
type CreatePostInput struct {
	Title   string
	Content string
}

// CommentView is a comment with its author resolved to a display-safe
// identity (username only, never the credential record).
type CommentView struct {
	Content        string
	AuthorID       string
	AuthorUsername string
	CreatedAt      time.Time
}

// PostDetail is the full post view returned by Get and Create.
type PostDetail struct {
	ID             string
	Title          string
	Content        string
	AuthorID       string
	AuthorUsername string
	Likes          []string
	Comments       []CommentView
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PostSummary is the list-item view; comments are reduced to a count to
// keep list payloads small.
type PostSummary struct {
	ID             string
	Title          string
	Content        string
	AuthorID       string
	AuthorUsername string
	LikeCount      int
	CommentCount   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ListPostsResult is the pagination envelope for List.
type ListPostsResult struct {
	Items       []PostSummary
	CurrentPage int
	TotalPages  int
	TotalCount  int64
	PageSize    int
	HasNextPage bool
}

// ToggleLikeResult reports the like state after a toggle.
type ToggleLikeResult struct {
	Liked bool
}

// PostService defines the use-case operations for posts. Owner-restricted
// operations take the caller's id; Update and Delete enforce ownership,
// ToggleLike and AddComment intentionally do not.
type PostService interface {
	Create(ctx context.Context, callerID string, input CreatePostInput) (*PostDetail, error)
	List(ctx context.Context, page, limit int) (*ListPostsResult, error)
	Get(ctx context.Context, id string) (*PostDetail, error)
	Update(ctx context.Context, callerID, id string, fields UpdatePostFields) (*PostDetail, error)
	Delete(ctx context.Context, callerID, id string) error
	ToggleLike(ctx context.Context, callerID, id string) (*ToggleLikeResult, error)
	AddComment(ctx context.Context, callerID, id, content string) (*CommentView, error)
}
