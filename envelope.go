package sealbox

import (
	"fmt"
	"strings"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

// Version is the current envelope format version. Version tags are
// fixed-width, zero-padded numeric strings so that lexicographic comparison
// matches numeric order; any future version must keep this shape.
const Version = "001"

const (
	envelopeSeparator = ":"
	envelopeFields    = 3
)

// Encrypt encrypts a UTF-8 plaintext under the given hex-encoded 32-byte
// key and returns a text envelope of the form
//
//	version:nonce_hex:ciphertext_base64
//
// A fresh 24-byte nonce is generated for every call, so encrypting the same
// plaintext twice produces different envelopes.
func Encrypt(key, plaintext string) (string, error) {
	keyBytes, err := decodeKey(key)
	if err != nil {
		return "", err
	}

	nonce, err := crypto.RandomBytes(crypto.NonceSize)
	if err != nil {
		return "", err
	}

	ciphertext, err := crypto.Encrypt(keyBytes, []byte(plaintext), nonce)
	if err != nil {
		return "", err
	}

	fields := []string{Version, crypto.ToHex(nonce), crypto.ToBase64(ciphertext)}
	return strings.Join(fields, envelopeSeparator), nil
}

// Decrypt parses a text envelope produced by Encrypt and returns the
// recovered plaintext.
//
// Structural problems (wrong field count, bad hex/base64) wrap
// ErrInvalidEnvelope; an envelope tagged with an older version fails with a
// VersionError. If the envelope parses but the authentication tag does not
// verify (tampering or the wrong key), the error is exactly
// ErrDecryptionFailed.
func Decrypt(key, envelope string) (string, error) {
	keyBytes, err := decodeKey(key)
	if err != nil {
		return "", err
	}

	parts := strings.Split(envelope, envelopeSeparator)
	if len(parts) != envelopeFields {
		return "", fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidEnvelope, envelopeFields, len(parts))
	}

	if err := checkVersion(parts[0]); err != nil {
		return "", err
	}

	nonce, err := crypto.FromHex(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: nonce is not valid hex", ErrInvalidEnvelope)
	}
	if len(nonce) != crypto.NonceSize {
		return "", fmt.Errorf("%w: nonce must be %d hex characters", ErrInvalidEnvelope, 2*crypto.NonceSize)
	}

	ciphertext, err := crypto.FromBase64(parts[2])
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext is not valid base64", ErrInvalidEnvelope)
	}

	plaintext, err := crypto.Decrypt(keyBytes, nonce, ciphertext)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// checkVersion rejects versions strictly older than the current one.
// Newer tags are allowed through so a future format that keeps the
// version-first layout can still be identified and attempted.
func checkVersion(version string) error {
	if version < Version {
		return &VersionError{Version: version}
	}
	return nil
}
