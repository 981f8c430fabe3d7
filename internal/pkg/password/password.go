// Package password wraps bcrypt hashing and verification for user credentials.
package password

import (
	"golang.org/x/crypto/bcrypt"

	"shipments/internal/pkg/errs"
)

const (
	// MinLength is the minimum accepted password length.
	MinLength = 6
	// MaxLength is the bcrypt input limit in bytes.
	MaxLength = 72
)

// Hash produces a bcrypt hash of the plaintext password at the default cost.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext password matches the stored bcrypt hash.
func Verify(hashed, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}

// ValidateStrength checks the plaintext password against the length rules.
// Returns a ValueIsOutOfRangeError naming the violated bound.
func ValidateStrength(plaintext string) error {
	if len(plaintext) < MinLength || len(plaintext) > MaxLength {
		return errs.NewValueIsOutOfRangeError("password length", len(plaintext), MinLength, MaxLength)
	}
	return nil
}
