// Package validate holds the input checks shared by registration and login.
package validate

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/calperez/auth-service/internal/domain"
)

const (
	passwordMinLen = 8
	passwordMaxLen = 128

	// specialChars is the accepted punctuation set. Changing it breaks
	// compatibility with already-registered clients.
	specialChars = `!@#$%^&*(),.?":{}|<>`
)

// Email checks that s is a syntactically valid address.
func Email(s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return &domain.ValidationError{Field: "email", Message: "invalid email address"}
	}
	return nil
}

// Password enforces the registration password policy: 8 to 128 characters
// with at least one uppercase letter, one lowercase letter, one digit and
// one special character. Length counts characters, not bytes, and the
// letter/digit classes are ASCII-only, so multibyte runes neither shorten
// the effective length nor satisfy a class requirement.
func Password(s string) error {
	if utf8.RuneCountInString(s) < passwordMinLen {
		return &domain.ValidationError{Field: "password", Message: "password must be at least 8 characters long"}
	}
	if utf8.RuneCountInString(s) > passwordMaxLen {
		return &domain.ValidationError{Field: "password", Message: "password must be at most 128 characters long"}
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return &domain.ValidationError{Field: "password", Message: "password must contain at least one uppercase letter"}
	case !hasLower:
		return &domain.ValidationError{Field: "password", Message: "password must contain at least one lowercase letter"}
	case !hasDigit:
		return &domain.ValidationError{Field: "password", Message: "password must contain at least one digit"}
	case !hasSpecial:
		return &domain.ValidationError{Field: "password", Message: "password must contain at least one special character"}
	}
	return nil
}
