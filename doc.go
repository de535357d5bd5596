// Package sealbox implements a versioned cryptographic envelope for
// protecting text messages and binary blobs at rest or in transit, plus the
// key-derivation primitives that produce the keys such envelopes consume.
//
// Every envelope carries a fixed-width version tag, a fresh 24-byte random
// nonce, and XChaCha20-Poly1305 ciphertext with the authentication tag
// appended. Text envelopes are colon-delimited and loggable
// ("001:<nonce hex>:<ciphertext base64>"); blob envelopes concatenate the
// same fields as fixed-width byte regions so binary payloads never collide
// with a delimiter.
//
// Basic usage:
//
//	key, err := sealbox.GenerateEncryptionKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	envelope, err := sealbox.Encrypt(key, "attack at dawn")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := sealbox.Decrypt(key, envelope)
//	if errors.Is(err, sealbox.ErrDecryptionFailed) {
//	    // wrong key or tampered envelope; not a malformed envelope
//	}
//
// # Error Model
//
// Structural problems (wrong field count, bad hex or base64, truncated
// blobs) wrap [ErrInvalidEnvelope]; envelopes tagged with an older format
// version fail with a [VersionError]. Authentication failure is different:
// it is an expected outcome ("wrong password", "tampered data") and is
// reported as exactly [ErrDecryptionFailed] so callers can branch on it
// with errors.Is without parsing anything.
//
// # Key Derivation
//
// [Hash] is a fast HKDF-SHA-512 expansion for deriving non-secret material
// from existing keys. [HashPassword] is Argon2id: deliberately slow and
// memory-hard, for deriving keys from passwords. Cost parameters are not
// embedded in the output; callers must persist them to re-derive the same
// key later.
//
// Keys, salts, and nonces cross this API hex-encoded. Keys are exactly
// 32 bytes (64 hex characters); they should come from
// [GenerateEncryptionKey], [Hash], or [HashPassword] and must never be
// logged or stored in version control.
package sealbox
