package crypto

import "crypto/sha256"

// SealKey derives the AEAD key for a sealed envelope from a KEM shared
// secret.
//
// The derivation uses:
//   - IKM (input key material): the KEM shared secret
//   - Salt: SHA-256 hash of the KEM ciphertext
//   - Info: the seal context string
//
// Binding the salt to the KEM ciphertext ties the AEAD key to this exact
// encapsulation, so a ciphertext spliced from another sealed envelope
// cannot decrypt.
func SealKey(sharedSecret, kemCiphertext []byte) ([]byte, error) {
	saltHash := sha256.Sum256(kemCiphertext)
	return DeriveKey(sharedSecret, saltHash[:], []byte(SealContext), KeySize)
}
