package service

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes and verifies raw passwords. Implementations must use
// a slow, salted one-way function.
type PasswordHasher interface {
	Hash(rawPassword string) (string, error)
	Verify(rawPassword, hash string) bool
}

// BcryptHasher implements PasswordHasher on top of bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher. A non-positive cost falls back to
// the bcrypt default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash hashes a raw password
func (h *BcryptHasher) Hash(rawPassword string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether rawPassword matches the stored hash
func (h *BcryptHasher) Verify(rawPassword, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(rawPassword)) == nil
}
