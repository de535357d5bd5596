package sealbox

import (
	"fmt"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

// Blob envelope layout: version (3 bytes) || nonce (24 bytes) || ciphertext.
// Fixed-width byte regions replace the text envelope's delimiter because
// binary payloads may legitimately contain any byte sequence.
const (
	blobVersionSize = len(Version)
	blobHeaderSize  = blobVersionSize + crypto.NonceSize
	blobMinSize     = blobHeaderSize + crypto.TagSize
)

// EncryptBlob encrypts a binary payload under the given hex-encoded 32-byte
// key and returns a binary envelope. The ciphertext region carries the
// authentication tag; no base64 layer is applied.
func EncryptBlob(key string, plainblob []byte) ([]byte, error) {
	keyBytes, err := decodeKey(key)
	if err != nil {
		return nil, err
	}

	nonce, err := crypto.RandomBytes(crypto.NonceSize)
	if err != nil {
		return nil, err
	}

	ciphertext, err := crypto.Encrypt(keyBytes, plainblob, nonce)
	if err != nil {
		return nil, err
	}

	return crypto.Concat([]byte(Version), nonce, ciphertext), nil
}

// DecryptBlob parses a binary envelope produced by EncryptBlob and returns
// the recovered payload. The error contract matches Decrypt: truncated
// envelopes wrap ErrInvalidEnvelope, older versions fail with a
// VersionError, and authentication failure is exactly ErrDecryptionFailed.
func DecryptBlob(key string, cipherblob []byte) ([]byte, error) {
	keyBytes, err := decodeKey(key)
	if err != nil {
		return nil, err
	}

	if len(cipherblob) < blobMinSize {
		return nil, fmt.Errorf("%w: blob too short, got %d bytes, want at least %d", ErrInvalidEnvelope, len(cipherblob), blobMinSize)
	}

	if err := checkVersion(string(cipherblob[:blobVersionSize])); err != nil {
		return nil, err
	}

	nonce := cipherblob[blobVersionSize:blobHeaderSize]
	ciphertext := cipherblob[blobHeaderSize:]

	plainblob, err := crypto.Decrypt(keyBytes, nonce, ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plainblob, nil
}
