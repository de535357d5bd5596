// Package crypto provides the cryptographic primitives behind the sealbox
// envelope format: authenticated encryption, key derivation, secure random
// generation, and the byte/text encodings the envelope protocol uses.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - XChaCha20-Poly1305: Authenticated encryption with associated data
//     (AEAD). The extended 192-bit nonce makes per-message random nonces
//     safe under a single long-lived key.
//
//   - HKDF-SHA-512 (RFC 5869): Fast key derivation for expanding existing
//     key material. Not suitable for passwords (no work factor).
//
//   - Argon2id (RFC 9106): Memory-hard password hashing for deriving keys
//     from low-entropy secrets.
//
//   - ML-KEM-768 (NIST FIPS 203): Post-quantum key encapsulation for
//     sealed envelopes addressed to a public key.
//
// # Critical Security Notes
//
// XChaCha20-Poly1305 nonces MUST be unique for each encryption with the
// same key. Nonce reuse completely breaks the security of the cipher,
// allowing attackers to recover plaintext and forge messages. Every nonce
// in this package is drawn fresh from the secure random source immediately
// before encryption.
//
// Authentication failures during decryption are collapsed into the single
// [ErrDecryptionFailed] sentinel. No detail about why the tag check failed
// is exposed, so callers cannot be turned into a decryption oracle.
//
// # Encodings
//
// Keys, salts, and nonces cross the public API hex-encoded; ciphertext in
// text envelopes is standard base64 with padding (RFC 4648 §4). Both
// directions of each conversion live here so the envelope codec never
// touches an encoder directly.
package crypto
