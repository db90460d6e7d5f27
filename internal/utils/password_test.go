package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_ProducesVerifiableDigest(t *testing.T) {
	digest, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if digest == "" {
		t.Fatal("expected non-empty digest")
	}
	if digest == "s3cret-password" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Errorf("expected a bcrypt digest, got %q", digest)
	}

	if !VerifyPassword("s3cret-password", digest) {
		t.Error("expected digest to verify against original password")
	}
	if VerifyPassword("wrong-password", digest) {
		t.Error("expected wrong password to fail verification")
	}
}

// Two hashes of the same password differ because of the embedded salt, yet
// both verify.
func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
	if !VerifyPassword("same-password", first) || !VerifyPassword("same-password", second) {
		t.Error("expected both digests to verify")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	tests := []struct {
		name   string
		digest string
	}{
		{"empty digest", ""},
		{"plaintext stored instead of digest", "not-a-bcrypt-hash"},
		{"truncated digest", "$2a$10$short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if VerifyPassword("any-password", tt.digest) {
				t.Error("expected verification to fail for malformed digest")
			}
		})
	}
}
