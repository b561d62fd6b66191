package encryption

import (
	"encoding/hex"
	"strings"
)

// segmentSeparator joins the hex-encoded IV, tag, and ciphertext.
const segmentSeparator = ":"

// encodeSegments serialises the three binary segments into the canonical
// iv:tag:ciphertext colon-hex string.
func encodeSegments(iv, tag, ciphertext []byte) string {
	var b strings.Builder
	b.Grow(2*len(iv) + 2*len(tag) + 2*len(ciphertext) + 2)
	b.WriteString(hex.EncodeToString(iv))
	b.WriteString(segmentSeparator)
	b.WriteString(hex.EncodeToString(tag))
	b.WriteString(segmentSeparator)
	b.WriteString(hex.EncodeToString(ciphertext))
	return b.String()
}

// parseSegments splits and decodes an encoded value, enforcing the
// structural invariants of the format: exactly three segments, valid hex
// throughout, a 12-byte IV, and a 16-byte tag. Any violation yields
// [ErrMalformedCiphertext].
func parseSegments(encoded string) (iv, tag, ciphertext []byte, err error) {
	parts := strings.Split(encoded, segmentSeparator)
	if len(parts) != 3 {
		return nil, nil, nil, ErrMalformedCiphertext
	}

	iv, err = hex.DecodeString(parts[0])
	if err != nil || len(iv) != ivSize {
		return nil, nil, nil, ErrMalformedCiphertext
	}
	tag, err = hex.DecodeString(parts[1])
	if err != nil || len(tag) != tagSize {
		return nil, nil, nil, ErrMalformedCiphertext
	}
	ciphertext, err = hex.DecodeString(parts[2])
	if err != nil {
		return nil, nil, nil, ErrMalformedCiphertext
	}
	return iv, tag, ciphertext, nil
}

// AppearsEncrypted reports whether value has the structural shape of an
// encoded ciphertext produced by this package. It does not verify the
// authentication tag or attempt decryption, so a true result only means the
// value parses — not that it is genuine.
func AppearsEncrypted(value string) bool {
	_, _, _, err := parseSegments(value)
	return err == nil
}
