// Package token issues and verifies the signed bearer tokens handed out at
// login. Tokens are HS256 JWTs carrying the user id and an absolute expiry;
// nothing is persisted server-side, so a token's lifecycle is entirely
// defined by its exp claim.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/karibu/auth-api/internal/core/domain"
)

// Lifetime is the fixed validity window of an issued token.
const Lifetime = time.Hour

// Claims binds a user identity to the registered expiry claim.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a process-wide symmetric secret.
// All tokens issued during a process lifetime use the same secret.
type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue returns a signed token for userID expiring at now + Lifetime.
func (s *Service) Issue(userID int64, now time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(Lifetime)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates tokenString as of now, returning the bound
// user id. An expired token with a valid signature yields
// domain.ErrTokenExpired; every other failure (malformed structure, bad
// signature, foreign signing algorithm, tampering) yields
// domain.ErrTokenInvalid.
func (s *Service) Verify(tokenString string, now time.Time) (int64, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domain.ErrTokenExpired
		}
		return 0, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return 0, domain.ErrTokenInvalid
	}
	return claims.UserID, nil
}
