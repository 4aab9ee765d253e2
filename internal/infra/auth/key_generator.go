// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/base64"

	"excerpta/internal/domain/service"
	"excerpta/internal/errors"
)

const (
	webKeyBytes  = 24
	liveKeyBytes = 32
)

// keyGenerator mints raw device API keys of the form "phm_<prefix>_<random>".
// The random part is unpadded URL-safe base64.
type keyGenerator struct{}

// NewKeyGenerator is the constructor for keyGenerator.
func NewKeyGenerator() service.KeyGenerator {
	return &keyGenerator{}
}

// NewKey mints a fresh key for the given family prefix.
func (g *keyGenerator) NewKey(prefix string) (string, error) {
	size := liveKeyBytes
	if prefix == service.KeyPrefixWeb {
		size = webKeyBytes
	}

	raw := make([]byte, size)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to generate key material")
	}

	return "phm_" + prefix + "_" + base64.RawURLEncoding.EncodeToString(raw), nil
}
