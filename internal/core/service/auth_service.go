package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/karibu/auth-api/internal/core/domain"
	"github.com/karibu/auth-api/internal/core/hash"
	"github.com/karibu/auth-api/internal/core/policy"
	"github.com/karibu/auth-api/internal/core/ports"
	"github.com/karibu/auth-api/internal/core/token"
)

const bearerPrefix = "Bearer "

// AuthService implements registration, login and token authentication.
type AuthService struct {
	repo   ports.UserRepository
	hasher *hash.BcryptHasher
	tokens *token.Service
}

func NewAuthService(repo ports.UserRepository, hasher *hash.BcryptHasher, tokens *token.Service) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register validates the candidate account and persists it with a hashed
// password. Checks run in a fixed order — email format, password strength,
// email uniqueness, username uniqueness — because the first failing check's
// message is what the client sees.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if ok, reason := policy.ValidateEmail(email); !ok {
		return nil, &domain.ValidationError{Field: "email", Reason: reason}
	}
	if ok, reason := policy.ValidatePassword(password); !ok {
		return nil, &domain.ValidationError{Field: "password", Reason: reason}
	}

	// Pre-check the email so it wins over a username collision; the unique
	// indexes still back this up when two registrations race.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
	}
	return s.repo.Create(ctx, user)
}

// Login verifies the credentials and issues a bearer token. Unknown email
// and wrong password both yield domain.ErrInvalidCredentials so a caller
// cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID, time.Now().UTC())
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}

// Authenticate gates protected operations: it extracts the bearer token from
// the Authorization header value, verifies it, and resolves the bound user.
// A token whose subject no longer exists is treated as invalid rather than
// letting an absent user through.
func (s *AuthService) Authenticate(ctx context.Context, authorization string) (*domain.User, error) {
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return nil, domain.ErrTokenMissing
	}
	raw := authorization[len(bearerPrefix):]
	if raw == "" {
		return nil, domain.ErrTokenMissing
	}

	userID, err := s.tokens.Verify(raw, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}
	return user, nil
}
