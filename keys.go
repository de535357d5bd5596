package sealbox

import (
	"fmt"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

// GenerateEncryptionKey returns a fresh 32-byte encryption key as 64 hex
// characters, sourced from the platform's secure random generator.
func GenerateEncryptionKey() (string, error) {
	return generateHex(crypto.KeySize)
}

// GenerateSalt returns a fresh 16-byte derivation salt as 32 hex characters.
func GenerateSalt() (string, error) {
	return generateHex(crypto.SaltSize)
}

func generateHex(n int) (string, error) {
	b, err := crypto.RandomBytes(n)
	if err != nil {
		return "", err
	}
	return crypto.ToHex(b), nil
}

// ValidateKey checks that key is a well-formed encryption key: valid hex
// decoding to exactly 32 bytes.
func ValidateKey(key string) error {
	_, err := decodeKey(key)
	return err
}

// decodeKey hex-decodes and length-checks an encryption key. All codec
// entry points go through here so key errors are uniform.
func decodeKey(key string) ([]byte, error) {
	raw, err := crypto.FromHex(key)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid hex", ErrInvalidKey)
	}

	if len(raw) != crypto.KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(raw), crypto.KeySize)
	}

	return raw, nil
}

// decodeSalt hex-decodes a derivation salt. Any valid hex length is
// accepted; the underlying primitives define their own salt requirements.
func decodeSalt(salt string) ([]byte, error) {
	raw, err := crypto.FromHex(salt)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid hex", ErrInvalidSalt)
	}
	return raw, nil
}
