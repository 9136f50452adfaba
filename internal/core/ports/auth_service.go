package ports

import (
	"context"

	"github.com/karibu/auth-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Authenticate resolves the user bound to an Authorization header value
	// of the form "Bearer <token>". It fails with domain.ErrTokenMissing,
	// domain.ErrTokenExpired or domain.ErrTokenInvalid.
	Authenticate(ctx context.Context, authorization string) (*domain.User, error)
}
