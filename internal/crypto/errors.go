package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the encryption key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrDecryptionFailed is returned when authenticated decryption fails.
	// This covers both tampered ciphertext and use of the wrong key; the
	// two cases are deliberately indistinguishable.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidSecretKeySize is returned when the ML-KEM secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidPublicKeySize is returned when the ML-KEM public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidCiphertextSize is returned when the KEM ciphertext size is invalid.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")
)
