package bindings

import "crypto/sha512"

// Hash returns the SHA-512 digest of m.
func Hash(m []byte) []byte {
	mustBeReady()

	sum := sha512.Sum512(m)
	return sum[:]
}
