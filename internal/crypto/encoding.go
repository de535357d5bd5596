package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// ToHex encodes bytes to lowercase hexadecimal.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes a hexadecimal string to bytes. Odd-length or
// non-hex input returns a decoding error.
func FromHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// ToBase64 encodes bytes to standard base64 with padding (RFC 4648 §4).
// Used for the ciphertext field of text envelopes.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard base64 (with padding) to bytes. Any
// non-alphabet character is rejected, including the newlines the stdlib
// decoder would silently skip.
func FromBase64(s string) ([]byte, error) {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return nil, base64.CorruptInputError(i)
	}
	return base64.StdEncoding.DecodeString(s)
}

// Concat joins byte sequences in argument order into a single
// freshly-allocated slice. None of the inputs are aliased by the result.
func Concat(chunks ...[]byte) []byte {
	total := 0
	for _, c := range chunks {
		total += len(c)
	}

	out := make([]byte, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
