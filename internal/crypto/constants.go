package crypto

const (
	// SealContext is the context string used in HKDF key derivation
	// for sealed envelopes, for domain separation.
	SealContext = "sealbox:seal:v1"

	// KeySize is the size of an encryption key in bytes.
	KeySize = 32
	// NonceSize is the size of an XChaCha20-Poly1305 nonce in bytes.
	NonceSize = 24
	// TagSize is the size of a Poly1305 authentication tag in bytes.
	TagSize = 16
	// SaltSize is the size of a derivation salt in bytes.
	SaltSize = 16

	// DefaultHashSize is the default output size of HKDF expansion in bytes.
	DefaultHashSize = 32

	// MLKEMPublicKeySize is the size of an ML-KEM-768 public key in bytes.
	MLKEMPublicKeySize = 1184
	// MLKEMSecretKeySize is the size of an ML-KEM-768 secret key in bytes.
	MLKEMSecretKeySize = 2400
	// MLKEMCiphertextSize is the size of an ML-KEM-768 ciphertext in bytes.
	MLKEMCiphertextSize = 1088
	// MLKEMSharedKeySize is the size of the shared secret from ML-KEM-768 in bytes.
	MLKEMSharedKeySize = 32

	// PublicKeyOffset is the byte offset where the public key is embedded
	// within an ML-KEM-768 secret key.
	PublicKeyOffset = 1152
)
