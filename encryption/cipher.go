// Package encryption provides authenticated field-level encryption for
// sensitive record values, built on AES-256-GCM.
//
// # Encoded value format
//
// Every encrypted field is serialised as a single string of three
// colon-separated, hex-encoded segments in a fixed order:
//
//	<iv>:<tag>:<ciphertext>
//
//	iv:         12 bytes (24 hex chars), fresh crypto/rand value per call
//	tag:        16 bytes (32 hex chars), the GCM authentication tag
//	ciphertext: same byte length as the plaintext (stream-style AEAD mode)
//
// This exact layout is an at-rest compatibility contract: values persisted
// under it must remain decryptable, so the segment order and encoding must
// never change.
//
// # Empty values
//
// An empty string means "no value" and is rejected by [FieldCipher.Encrypt]
// with [ErrEmptyPlaintext]. Callers that need pass-through semantics for
// optional fields should go through [FieldTransform], which skips the cipher
// entirely for empty input in both directions.
//
// # Security notes
//
//   - A unique random IV is generated for every Encrypt call; encrypting the
//     same plaintext twice yields different encodings. Never reuse an IV
//     under the same key.
//   - Decryption verifies the authentication tag before any plaintext is
//     released; tampered or wrong-key values fail with
//     [ErrAuthenticationFailed].
//   - Key material is cloned on ingestion and never appears in error
//     messages.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

const (
	// KeySize is the required key length in bytes (AES-256).
	KeySize = 32

	// ivSize is the GCM nonce length in bytes (96 bits).
	ivSize = 12

	// tagSize is the GCM authentication tag length in bytes (128 bits).
	tagSize = 16
)

// FieldCipher encrypts and decrypts individual scalar field values with
// AES-256-GCM, producing the self-contained colon-hex encoding documented in
// the package comment.
//
// A FieldCipher is immutable after construction and safe for concurrent use
// by multiple goroutines; the AEAD instance is built once and shared.
type FieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher constructs a [FieldCipher] from raw key material.
//
// The key must be exactly [KeySize] (32) bytes; anything else fails with
// [ErrInvalidKey]. Use [ParseKey] to obtain key bytes from the hex form used
// in configuration, or [GenerateKey] to create a fresh key.
func NewFieldCipher(key []byte) (*FieldCipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidKey, KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	aead, err := cipher.NewGCMWithTagSize(block, tagSize)
	if err != nil {
		return nil, fmt.Errorf("encryption: failed to initialise AES-GCM: %w", err)
	}

	return &FieldCipher{aead: aead}, nil
}

// Encrypt encrypts a UTF-8 field value and returns the colon-hex encoding.
//
// A fresh 12-byte IV is drawn from crypto/rand on every call, so two calls
// with the same plaintext produce different outputs — both decrypt to the
// original value.
//
// Empty input fails with [ErrEmptyPlaintext]; see the package comment for
// the optional-field contract.
func (c *FieldCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPlaintext
	}

	iv, err := randomBytes(ivSize)
	if err != nil {
		return "", err
	}

	// Seal appends the tag after the ciphertext: sealed = ciphertext || tag.
	sealed := c.aead.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-tagSize]
	tag := sealed[len(sealed)-tagSize:]

	return encodeSegments(iv, tag, ciphertext), nil
}

// Decrypt decrypts a value previously produced by [FieldCipher.Encrypt] and
// returns the original UTF-8 string.
//
// Structural problems — not exactly three segments, non-hex content, wrong
// IV or tag length — fail with [ErrMalformedCiphertext]. A well-formed value
// whose tag does not verify (tampering, corruption, wrong key) fails with
// [ErrAuthenticationFailed]; the two cases are distinct so callers can tell
// "not decryptable" from "not even well-formed". No partial plaintext is
// ever returned.
func (c *FieldCipher) Decrypt(encoded string) (string, error) {
	iv, tag, ciphertext, err := parseSegments(encoded)
	if err != nil {
		return "", err
	}

	// Open expects sealed = ciphertext || tag and verifies the tag before
	// releasing any plaintext.
	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := c.aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}
	return string(plaintext), nil
}
