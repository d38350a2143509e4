package ports

import (
	"context"

	"github.com/openpress/blog-system/internal/core/domain"
)

// UserRepository defines persistence for account credentials.
// Create must rely on store-level unique constraints for username and
// email; a check-then-insert in application code would race.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// UsernamesByID resolves user ids to usernames for display. Unknown
	// ids are simply absent from the result map.
	UsernamesByID(ctx context.Context, ids []string) (map[string]string, error)
}
