package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hasher.Verify(password, stored)
//	if errors.Is(err, hashing.ErrInvalidHashFormat) {
//	    // stored hash is corrupted, not merely a wrong password
//	}
var (
	// ErrInvalidCost is returned when the configured cost factor is zero,
	// negative, or outside bcrypt's supported range. Startup must fail
	// rather than proceed with a weaker default.
	ErrInvalidCost = errors.New("hashing: invalid cost factor")

	// ErrInvalidHashFormat is returned by Verify when the stored hash does
	// not have the expected structure. It is reported distinctly from a
	// non-matching password, which is (false, nil).
	ErrInvalidHashFormat = errors.New("hashing: invalid or unrecognised hash format")
)
