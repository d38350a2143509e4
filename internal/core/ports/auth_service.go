package ports

import (
	"context"

	"github.com/openpress/blog-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
}
