package encryption

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// ParseKey decodes key material from the 64-hex-character representation
// used in configuration (the ENCRYPTION_KEY environment variable).
//
// Bad hex or a decoded length other than [KeySize] bytes fails with
// [ErrInvalidKey]; there is deliberately no fallback. The returned slice is
// freshly allocated and safe to hand to [NewFieldCipher].
func ParseKey(hexKey string) ([]byte, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid hex", ErrInvalidKey)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: need %d bytes (%d hex chars), got %d bytes",
			ErrInvalidKey, KeySize, 2*KeySize, len(key))
	}
	return key, nil
}

// GenerateKey returns a fresh cryptographically random 32-byte key, ready to
// pass to [NewFieldCipher].
//
// Example:
//
//	key, err := encryption.GenerateKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(encryption.EncodeKey(key)) // store as ENCRYPTION_KEY
func GenerateKey() ([]byte, error) {
	return randomBytes(KeySize)
}

// EncodeKey returns the hex encoding of key, suitable for storing as the
// ENCRYPTION_KEY configuration value. It is the inverse of [ParseKey].
func EncodeKey(key []byte) string {
	return hex.EncodeToString(key)
}

// randomBytes returns n cryptographically random bytes from crypto/rand.
// It is used internally for key and IV generation.
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("encryption: failed to generate %d random bytes: %w", n, err)
	}
	return b, nil
}
