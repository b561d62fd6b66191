// Package hashing provides salted, adaptive one-way credential hashing for
// password storage, built on bcrypt.
//
// # Architecture
//
// [Hasher] is the core abstraction; [BcryptHasher] is the shipped driver.
// [Pool] wraps any Hasher with a bounded-concurrency front so that the
// intentionally slow hashing work (tens to hundreds of milliseconds at
// production cost factors) cannot monopolize the process under a burst of
// signups or logins.
//
// # Security properties
//
//   - A fresh random salt is generated inside the algorithm for every hash;
//     two hashes of the same password are never equal. Callers can never
//     supply their own salt.
//   - Verification is constant-time.
//   - The cost factor is validated at construction and never silently
//     defaulted; see [NewBcryptHasher].
//   - Password values never appear in error messages.
package hashing

import "strings"

// Hasher is the interface satisfied by credential-hashing drivers.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Hash hashes a plaintext password and returns the encoded hash string,
	// with the salt and cost parameters embedded per invocation.
	Hash(password string) (string, error)

	// Verify reports whether password matches the previously encoded hash.
	// Returns (false, nil) on a simple mismatch; a structurally invalid hash
	// is a distinct error ([ErrInvalidHashFormat]), never treated as
	// "verification failed".
	Verify(password, hash string) (bool, error)
}

// looksLikeBcrypt reports whether hash has a recognised bcrypt prefix
// ($2a$, $2b$, or $2y$). It is a structural check only and does not verify
// the hash.
func looksLikeBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}
