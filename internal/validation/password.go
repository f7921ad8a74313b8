package validation

import (
	"errors"
	"strings"
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 12 characters")
	// bcrypt silently truncates input beyond 72 bytes.
	ErrPasswordTooLong = errors.New("password must not exceed 72 characters")
	ErrPasswordCommon  = errors.New("password is too common, please choose a stronger one")
)

// weakSubstrings are rejected anywhere in the password, case
// insensitively.
var weakSubstrings = []string{
	"password", "123456", "qwerty", "admin", "letmein",
	"welcome", "monkey", "dragon", "master", "sunshine",
}

// ValidatePassword enforces a 12-character minimum and rejects
// passwords built on well-known weak strings.
func ValidatePassword(password string) error {
	if len(password) < 12 {
		return ErrPasswordTooShort
	}
	if len(password) > 72 {
		return ErrPasswordTooLong
	}

	lower := strings.ToLower(password)
	for _, weak := range weakSubstrings {
		if strings.Contains(lower, weak) {
			return ErrPasswordCommon
		}
	}

	return nil
}
