package domain

import (
	"errors"
	"time"
)

// User models a registered account. PasswordHash holds the bcrypt hash of the
// password; the plaintext is never stored.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	ErrEmailTaken         = errors.New("email address already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenMissing = errors.New("token is missing")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")

	ErrTooManyAttempts = errors.New("too many login attempts")
)

// ValidationError carries the policy reason for a rejected email or password.
// The reason is surfaced verbatim to the client; Field names the offending
// input ("email" or "password").
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
