package sealbox

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidKey is returned when an encryption key is not 64 hex
	// characters (32 bytes decoded).
	ErrInvalidKey = errors.New("invalid encryption key")

	// ErrInvalidSalt is returned when a salt is not valid hex.
	ErrInvalidSalt = errors.New("invalid salt")

	// ErrInvalidEnvelope is returned when an envelope is structurally
	// malformed: wrong field count, bad hex or base64, or a truncated blob.
	ErrInvalidEnvelope = errors.New("invalid envelope")

	// ErrVersionTooOld is returned when an envelope's version tag is
	// lexicographically older than the current format version.
	ErrVersionTooOld = errors.New("unsupported envelope version")

	// ErrDecryptionFailed is returned when the authentication tag does not
	// verify. This covers both tampering and use of the wrong key, and is
	// deliberately never wrapped with detail: it is the expected "could not
	// authenticate" outcome, distinct from a malformed envelope.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidParameters is returned when derivation cost parameters are
	// out of range.
	ErrInvalidParameters = errors.New("invalid derivation parameters")

	// ErrInvalidPublicKey is returned when a sealed-envelope public key is
	// malformed.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidSecretKey is returned when a sealed-envelope secret key is
	// malformed.
	ErrInvalidSecretKey = errors.New("invalid secret key")
)

// VersionError reports an envelope whose version tag predates the current
// format version. Version tags are fixed-width zero-padded numeric strings,
// so lexicographic comparison matches numeric order.
type VersionError struct {
	// Version is the version tag parsed from the envelope.
	Version string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("envelope version %q is older than supported version %q", e.Version, Version)
}

// Is implements errors.Is for sentinel error matching.
func (e *VersionError) Is(target error) bool {
	return target == ErrVersionTooOld
}
