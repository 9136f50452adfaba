package ports

import (
	"context"

	"github.com/karibu/auth-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
// Create assigns the id and must enforce username/email uniqueness
// atomically, returning domain.ErrEmailTaken or domain.ErrUsernameTaken on
// collision.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
