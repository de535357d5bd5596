package crypto

import "golang.org/x/crypto/argon2"

// DerivePassword derives key material from a password using Argon2id.
//
// memoryKiB is the memory cost in KiB (the public API speaks bytes; the
// conversion happens at the caller). The function is deterministic for a
// fixed parameter set; callers must persist iterations, memory,
// parallelism, and length alongside any derived-key usage, since none of
// them are encoded in the output.
//
// This is intentionally slow and memory-intensive. Never call it on a
// latency-sensitive path.
func DerivePassword(password, salt []byte, iterations, memoryKiB uint32, parallelism uint8, length uint32) []byte {
	return argon2.IDKey(password, salt, iterations, memoryKiB, parallelism, length)
}
