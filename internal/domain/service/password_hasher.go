// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for secret hashing and verification.
// Passwords and device API keys go through the same salted hash path,
// keeping the domain independent of the underlying algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext secret.
	Hash(secret string) (string, error)

	// Check compares a plaintext secret with a stored hash to see if they match.
	Check(secret, hash string) bool
}
