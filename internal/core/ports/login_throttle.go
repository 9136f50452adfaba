package ports

import "context"

// LoginThrottle limits repeated failed logins per (email, client IP) pair.
// Implementations should fail open: an unavailable backend must not lock
// every account out.
type LoginThrottle interface {
	// Allow reports whether another login attempt is permitted.
	Allow(ctx context.Context, email, ip string) (bool, error)
	// RecordFailure counts one failed attempt against the pair.
	RecordFailure(ctx context.Context, email, ip string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, email, ip string) error
}
