// Package policy holds the account validation rules: password strength and
// email syntax. Both checks are pure and return the human-readable reason a
// candidate was rejected, which callers surface to the client unchanged.
package policy

import (
	"regexp"
	"unicode/utf8"
)

const (
	minPasswordLength = 8

	// SpecialChars is the set of characters that satisfies the
	// special-character requirement of the password rule.
	SpecialChars = "@$!%*?&"
)

const (
	reasonTooShort    = "Password must be at least 8 characters long"
	reasonComposition = "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character (" + SpecialChars + ")"
	reasonBadEmail    = "Invalid email format"
)

var (
	lowerRe   = regexp.MustCompile(`[a-z]`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile("[" + SpecialChars + "]")

	// local-part @ domain-labels . tld (tld at least two letters).
	// Syntactic check only; no DNS or mailbox verification.
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidatePassword reports whether password meets the strength rule: at least
// 8 characters, with at least one lowercase letter, one uppercase letter, one
// digit, and one character from SpecialChars. Characters outside those
// classes are permitted.
func ValidatePassword(password string) (bool, string) {
	// Length counts characters, not bytes: multibyte passwords must not
	// satisfy the minimum early.
	if utf8.RuneCountInString(password) < minPasswordLength {
		return false, reasonTooShort
	}
	if !lowerRe.MatchString(password) ||
		!upperRe.MatchString(password) ||
		!digitRe.MatchString(password) ||
		!specialRe.MatchString(password) {
		return false, reasonComposition
	}
	return true, ""
}

// ValidateEmail reports whether email has a plausible address shape.
func ValidateEmail(email string) (bool, string) {
	if !emailRe.MatchString(email) {
		return false, reasonBadEmail
	}
	return true, ""
}
