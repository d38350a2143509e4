package ports

import (
	"context"

	"github.com/openpress/blog-system/internal/core/domain"
)

// UpdatePostFields carries a partial update. Nil means "keep the current
// value"; the service rejects present-but-empty values before the
// repository ever sees them.
type UpdatePostFields struct {
	Title   *string
	Content *string
}

// PostRepository defines persistence operations for posts. All mutations
// of a single post must be atomic at the document level so that
// concurrent writers cannot lose each other's updates.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns one page of posts, newest first, and the total count.
	List(ctx context.Context, page, limit int) ([]*domain.Post, int64, error)
	Update(ctx context.Context, id string, fields UpdatePostFields) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	// ToggleLike atomically adds userID to the likes set when absent and
	// removes it when present. It reports whether the post is now liked.
	ToggleLike(ctx context.Context, id, userID string) (bool, error)
	AddComment(ctx context.Context, id string, comment domain.Comment) error
}
