package sealbox

import (
	"fmt"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

// Sealed envelope layout:
//
//	version (3 bytes) || KEM ciphertext (1088 bytes) || nonce (24 bytes) || ciphertext
//
// A sealed envelope is addressed to an ML-KEM-768 public key instead of a
// shared symmetric key: a fresh shared secret is encapsulated per call and
// expanded into the AEAD key with HKDF-SHA-512, salted by the hash of the
// KEM ciphertext so the key is bound to this exact encapsulation.
const (
	sealedHeaderSize = blobVersionSize + crypto.MLKEMCiphertextSize + crypto.NonceSize
	sealedMinSize    = sealedHeaderSize + crypto.TagSize
)

// Keypair is an ML-KEM-768 keypair for sealed envelopes. Both keys are
// hex-encoded, matching the rest of the public API.
//
// Keep the secret key secure: it must never be logged, transmitted in
// plaintext, or stored in version control.
type Keypair struct {
	// PublicKey is the ML-KEM-768 public key (2368 hex characters).
	PublicKey string
	// SecretKey is the ML-KEM-768 secret key (4800 hex characters).
	SecretKey string
}

// GenerateKeypair creates a new ML-KEM-768 keypair for sealed envelopes.
func GenerateKeypair() (*Keypair, error) {
	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return nil, err
	}

	return &Keypair{
		PublicKey: crypto.ToHex(kp.PublicKey),
		SecretKey: crypto.ToHex(kp.SecretKey),
	}, nil
}

// KeypairFromSecretKey reconstructs a keypair from its hex-encoded secret
// key. The public key is embedded in the ML-KEM-768 secret key and does not
// need to be stored separately.
func KeypairFromSecretKey(secretKey string) (*Keypair, error) {
	raw, err := decodeSecretKey(secretKey)
	if err != nil {
		return nil, err
	}

	kp, err := crypto.KeypairFromSecretKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecretKey, err)
	}

	return &Keypair{
		PublicKey: crypto.ToHex(kp.PublicKey),
		SecretKey: crypto.ToHex(kp.SecretKey),
	}, nil
}

// Seal encrypts a binary payload to the given hex-encoded ML-KEM-768 public
// key. Anyone holding the public key can seal; only the holder of the
// matching secret key can unseal.
func Seal(publicKey string, plainblob []byte) ([]byte, error) {
	pubBytes, err := decodePublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	kemCt, sharedSecret, err := crypto.Encapsulate(pubBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	aeadKey, err := crypto.SealKey(sharedSecret, kemCt)
	if err != nil {
		return nil, err
	}

	nonce, err := crypto.RandomBytes(crypto.NonceSize)
	if err != nil {
		return nil, err
	}

	ciphertext, err := crypto.Encrypt(aeadKey, plainblob, nonce)
	if err != nil {
		return nil, err
	}

	return crypto.Concat([]byte(Version), kemCt, nonce, ciphertext), nil
}

// Unseal decrypts a sealed envelope with the hex-encoded ML-KEM-768 secret
// key. The error contract matches DecryptBlob: truncated envelopes wrap
// ErrInvalidEnvelope, older versions fail with a VersionError, and
// authentication failure is exactly ErrDecryptionFailed.
func Unseal(secretKey string, cipherblob []byte) ([]byte, error) {
	raw, err := decodeSecretKey(secretKey)
	if err != nil {
		return nil, err
	}

	kp, err := crypto.KeypairFromSecretKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecretKey, err)
	}

	if len(cipherblob) < sealedMinSize {
		return nil, fmt.Errorf("%w: sealed blob too short, got %d bytes, want at least %d", ErrInvalidEnvelope, len(cipherblob), sealedMinSize)
	}

	if err := checkVersion(string(cipherblob[:blobVersionSize])); err != nil {
		return nil, err
	}

	kemCt := cipherblob[blobVersionSize : blobVersionSize+crypto.MLKEMCiphertextSize]
	nonce := cipherblob[blobVersionSize+crypto.MLKEMCiphertextSize : sealedHeaderSize]
	ciphertext := cipherblob[sealedHeaderSize:]

	// ML-KEM decapsulation is implicit-rejection: a tampered KEM ciphertext
	// yields a garbage shared secret, and the AEAD tag check below fails.
	sharedSecret, err := kp.Decapsulate(kemCt)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	aeadKey, err := crypto.SealKey(sharedSecret, kemCt)
	if err != nil {
		return nil, err
	}

	plainblob, err := crypto.Decrypt(aeadKey, nonce, ciphertext)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plainblob, nil
}

func decodePublicKey(publicKey string) ([]byte, error) {
	raw, err := crypto.FromHex(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid hex", ErrInvalidPublicKey)
	}
	if len(raw) != crypto.MLKEMPublicKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPublicKey, len(raw), crypto.MLKEMPublicKeySize)
	}
	return raw, nil
}

func decodeSecretKey(secretKey string) ([]byte, error) {
	raw, err := crypto.FromHex(secretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid hex", ErrInvalidSecretKey)
	}
	if len(raw) != crypto.MLKEMSecretKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSecretKey, len(raw), crypto.MLKEMSecretKeySize)
	}
	return raw, nil
}
