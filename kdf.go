package sealbox

import (
	"fmt"
	"math"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

// Default cost parameters for HashPassword. Iterations and memory follow
// the moderate Argon2id profile; parallelism is pinned to a single lane so
// output is reproducible regardless of host CPU count.
const (
	// DefaultIterations is the default Argon2id pass count.
	DefaultIterations = 5
	// DefaultMemoryLimit is the default Argon2id memory cost in bytes (64 MiB).
	DefaultMemoryLimit = 64 * 1024 * 1024
	// DefaultKeyLength is the default derived key length in bytes.
	DefaultKeyLength = 32
	// DefaultParallelism is the default Argon2id lane count.
	DefaultParallelism = 1
)

// HashParams configures Hash. The zero value selects all defaults.
type HashParams struct {
	// Length is the output length in bytes. Zero selects the default (32).
	Length int
}

func (p HashParams) withDefaults() HashParams {
	if p.Length == 0 {
		p.Length = crypto.DefaultHashSize
	}
	return p
}

// PasswordHashParams configures HashPassword. Zero-valued fields select
// their defaults.
//
// The parameters are not embedded in the output. To re-derive the same key
// later (for example to verify a password), callers must persist every
// parameter they used alongside the salt.
type PasswordHashParams struct {
	// Iterations is the Argon2id pass count. Zero selects the default (5).
	Iterations int
	// MemoryLimit is the memory cost in bytes. Zero selects the default
	// (64 MiB). Values below 8 KiB are rejected.
	MemoryLimit int
	// Length is the derived key length in bytes. Zero selects the default (32).
	Length int
	// Parallelism is the Argon2id lane count. Zero selects the default (1).
	Parallelism int
}

func (p PasswordHashParams) withDefaults() PasswordHashParams {
	if p.Iterations == 0 {
		p.Iterations = DefaultIterations
	}
	if p.MemoryLimit == 0 {
		p.MemoryLimit = DefaultMemoryLimit
	}
	if p.Length == 0 {
		p.Length = DefaultKeyLength
	}
	if p.Parallelism == 0 {
		p.Parallelism = DefaultParallelism
	}
	return p
}

func (p PasswordHashParams) validate() error {
	// The cost parameters feed uint32 arguments; out-of-range values must
	// fail here rather than truncate silently
	if p.Iterations < 0 || int64(p.Iterations) > math.MaxUint32 {
		return fmt.Errorf("%w: iterations must be between 1 and %d", ErrInvalidParameters, uint32(math.MaxUint32))
	}
	if p.Length < 0 || int64(p.Length) > math.MaxUint32 {
		return fmt.Errorf("%w: length must be between 1 and %d", ErrInvalidParameters, uint32(math.MaxUint32))
	}
	if p.Parallelism < 0 || p.Parallelism > 255 {
		return fmt.Errorf("%w: parallelism must be between 1 and 255", ErrInvalidParameters)
	}
	// Argon2 needs at least 8 KiB per lane
	if p.MemoryLimit < 8*1024*p.Parallelism {
		return fmt.Errorf("%w: memory limit %d bytes is below the minimum of 8 KiB per lane", ErrInvalidParameters, p.MemoryLimit)
	}
	if int64(p.MemoryLimit/1024) > math.MaxUint32 {
		return fmt.Errorf("%w: memory limit %d bytes is out of range", ErrInvalidParameters, p.MemoryLimit)
	}
	return nil
}

// Hash derives key material from a secret using HKDF-SHA-512 with the given
// hex-encoded salt and no info context. It is fast and deterministic:
// suitable for deriving non-secret material (integrity-check keys,
// subkeys) from existing high-entropy keys. NOT suitable for password
// storage, since it has no work factor.
//
// The result is hex-encoded.
func Hash(secret, salt string, params ...HashParams) (string, error) {
	var p HashParams
	if len(params) > 0 {
		p = params[0]
	}
	p = p.withDefaults()

	if p.Length < 0 {
		return "", fmt.Errorf("%w: length must be positive", ErrInvalidParameters)
	}

	saltBytes, err := decodeSalt(salt)
	if err != nil {
		return "", err
	}

	key, err := crypto.DeriveKey([]byte(secret), saltBytes, nil, p.Length)
	if err != nil {
		return "", err
	}

	return crypto.ToHex(key), nil
}

// HashPassword derives key material from a password using Argon2id with the
// given hex-encoded salt. It is deliberately slow and memory-intensive;
// never call it on a latency-sensitive path.
//
// Deterministic for a fixed parameter set: the same password, salt, and
// cost parameters always produce the same key. The result is hex-encoded.
func HashPassword(password, salt string, params ...PasswordHashParams) (string, error) {
	var p PasswordHashParams
	if len(params) > 0 {
		p = params[0]
	}
	p = p.withDefaults()

	if err := p.validate(); err != nil {
		return "", err
	}

	saltBytes, err := decodeSalt(salt)
	if err != nil {
		return "", err
	}

	key := crypto.DerivePassword(
		[]byte(password),
		saltBytes,
		uint32(p.Iterations),
		uint32(p.MemoryLimit/1024),
		uint8(p.Parallelism),
		uint32(p.Length),
	)

	return crypto.ToHex(key), nil
}
