package encryption

// FieldTransform binds a [FieldCipher] to entity fields at the serialization
// boundary: values headed for storage go through [FieldTransform.EncryptField],
// values materialised from storage come back through
// [FieldTransform.DecryptField]. Callers above the boundary only ever see
// plaintext; stored representations only ever see ciphertext.
//
// The transform owns no state beyond the cipher and must be applied by every
// code path that materialises the entity — a single fetch, a list result, or
// a post-update read. A missed path leaks ciphertext to callers (or worse,
// plaintext to storage).
//
// # Optional fields
//
// Not every record populates its sensitive field. An empty string is treated
// as "no value": both directions pass it through untouched, and it never
// enters the cipher. This is the documented resolution of the empty-value
// ambiguity in the encrypt path — empty is never encrypted, so empty is
// never decrypted.
type FieldTransform struct {
	cipher *FieldCipher
}

// NewFieldTransform constructs a [FieldTransform] over cipher.
func NewFieldTransform(cipher *FieldCipher) *FieldTransform {
	return &FieldTransform{cipher: cipher}
}

// EncryptField prepares a field value for storage. Empty input is returned
// unchanged; everything else is encrypted.
func (t *FieldTransform) EncryptField(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	return t.cipher.Encrypt(value)
}

// DecryptField restores a stored field value for callers. Empty input is
// returned unchanged; everything else is decrypted, with the cipher's error
// semantics ([ErrMalformedCiphertext], [ErrAuthenticationFailed]) surfaced
// as-is.
func (t *FieldTransform) DecryptField(stored string) (string, error) {
	if stored == "" {
		return "", nil
	}
	return t.cipher.Decrypt(stored)
}
