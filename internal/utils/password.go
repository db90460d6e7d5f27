package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt digest from the given plaintext
// password. The salt is generated by bcrypt itself, so hashing the same
// password twice produces different digests.
//
// Returns an error only if bcrypt rejects the input (e.g. a password longer
// than 72 bytes).
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt digest.
//
// A malformed stored digest is treated as a verification failure, not an
// error: the caller cannot distinguish it from a wrong password, which keeps
// the rejection shape identical for every bad-credential case.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
