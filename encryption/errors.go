package encryption

import "errors"

// Sentinel errors returned by encryption operations.
//
// Callers should use errors.Is for comparisons:
//
//	_, err := cipher.Decrypt(stored)
//	if errors.Is(err, encryption.ErrAuthenticationFailed) {
//	    // value was tampered with or encrypted under a different key
//	}
var (
	// ErrInvalidKey is returned when key material is not exactly 32 bytes,
	// or when its hex representation cannot be decoded. Configuration code
	// must treat this as fatal rather than fall back to a default key.
	ErrInvalidKey = errors.New("encryption: invalid key material")

	// ErrEmptyPlaintext is returned by Encrypt when given an empty string.
	// Empty means "no value"; optional fields are passed through by
	// [FieldTransform] and never enter the cipher.
	ErrEmptyPlaintext = errors.New("encryption: refusing to encrypt empty value")

	// ErrMalformedCiphertext is returned when an encoded value does not
	// parse into exactly three hex segments with the expected IV and tag
	// lengths. It is never auto-corrected.
	ErrMalformedCiphertext = errors.New("encryption: malformed ciphertext encoding")

	// ErrAuthenticationFailed is returned when the GCM authentication tag
	// does not verify. This indicates tampering, corruption, or decryption
	// under the wrong key, and is reported distinctly from
	// [ErrMalformedCiphertext]. Treat it as a hard failure; never fall back
	// to returning unverified plaintext.
	ErrAuthenticationFailed = errors.New("encryption: authentication failed — value may have been tampered with")
)
