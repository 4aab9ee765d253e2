// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"excerpta/internal/domain/service"
	"excerpta/internal/errors"
)

const (
	// minIterations is the floor for the PBKDF2 work factor.
	minIterations = 100000
	saltBytes     = 16
	keyBytes      = 32
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2-HMAC-SHA256. The stored form is "<hex salt>$<hex key>".
// Passwords and device API keys share this path.
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// Iterations below the security floor are raised to it.
func NewPBKDF2Hasher(iterations int) service.PasswordHasher {
	if iterations < minIterations {
		iterations = minIterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// Hash generates a salted PBKDF2 hash from a plaintext secret.
func (h *pbkdf2Hasher) Hash(secret string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(secret), []byte(saltHex), h.iterations, keyBytes, sha256.New)

	return saltHex + "$" + hex.EncodeToString(key), nil
}

// Check compares a plaintext secret with a stored "salt$hex" hash.
// The comparison is constant-time.
func (h *pbkdf2Hasher) Check(secret, hash string) bool {
	saltHex, keyHex, ok := strings.Cut(hash, "$")
	if !ok || saltHex == "" || keyHex == "" {
		return false
	}

	expected, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(secret), []byte(saltHex), h.iterations, len(expected), sha256.New)

	return hmac.Equal(key, expected)
}
