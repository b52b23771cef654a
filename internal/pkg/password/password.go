// Package password hashes member credentials with bcrypt. The stored hash
// column may be NULL for OAuth-only members; callers guard that before
// comparing.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassword = errors.New("invalid password")

func HashPassword(pwd string) (string, error) {
	if pwd == "" {
		return "", ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword returns ErrInvalidPassword for every mismatch so callers
// cannot tell which part failed.
func ComparePassword(hashed, pwd string) error {
	if hashed == "" || pwd == "" {
		return ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pwd)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}
