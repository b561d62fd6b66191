package hashing

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt at a fixed, validated cost.
//
// Bcrypt generates and embeds a 128-bit random salt per call, so callers
// never manage salts. The hasher is immutable after construction and safe
// for concurrent use.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [BcryptHasher] with the given work factor.
//
// The cost comes from configuration (HASH_COST_FACTOR) and must lie in
// [bcrypt.MinCost, bcrypt.MaxCost]; zero, negative, or out-of-range values
// fail with [ErrInvalidCost]. There is deliberately no fallback to a
// default — a missing or malformed cost must abort startup, not weaken the
// hashes.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Cost returns the configured work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Hash hashes password and returns the Modular Crypt Format string
// (e.g. "$2a$12$..."). A fresh random salt is generated internally, so two
// calls with the same password produce different outputs.
//
// Note: bcrypt truncates passwords longer than 72 bytes.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: %w", err)
	}
	return string(hash), nil
}

// Verify recomputes the hash using the salt and cost embedded in hash and
// compares in constant time.
//
// Returns (false, nil) for a non-matching password. A hash that is not
// structurally bcrypt fails with [ErrInvalidHashFormat] so callers can
// distinguish a bad credential from corrupted stored data.
func (h *BcryptHasher) Verify(password, hash string) (bool, error) {
	if !looksLikeBcrypt(hash) {
		return false, fmt.Errorf("%w: hash does not appear to be bcrypt", ErrInvalidHashFormat)
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	// Anything else is a structural problem with the stored hash
	// (truncated, bad cost field, bad salt encoding).
	return false, fmt.Errorf("%w: %v", ErrInvalidHashFormat, err)
}
