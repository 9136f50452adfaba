package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/karibu/auth-api/internal/core/domain"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService("secret")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	signed, err := svc.Issue(42, now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	userID, err := svc.Verify(signed, now)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}

	// Still valid just inside the window.
	if _, err := svc.Verify(signed, now.Add(Lifetime-time.Second)); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService("secret")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	signed, err := svc.Issue(7, now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(signed, now.Add(61*time.Minute)); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	// Expiry is exclusive: at exactly exp the token is already expired.
	if _, err := svc.Verify(signed, now.Add(Lifetime)); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at exp, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewService("secret")
	now := time.Now().UTC()

	for _, s := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(s, now); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("Verify(%q): expected ErrTokenInvalid, got %v", s, err)
		}
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	now := time.Now().UTC()

	signed, err := NewService("secret").Issue(1, now)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewService("other").Verify(signed, now); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyRejectsForeignAlgorithm(t *testing.T) {
	svc := NewService("secret")
	now := time.Now().UTC()

	claims := Claims{
		UserID: 9,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(Lifetime)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed, now); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for HS512 token, got %v", err)
	}
}
