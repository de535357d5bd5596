package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for nonces, keys, and salts.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// RandomBytes returns n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	r := randReader
	if r == nil {
		r = rand.Reader
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	return buf, nil
}
