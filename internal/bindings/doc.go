// Package bindings is the only place that talks to the cryptographic backend:
// github.com/gtank/ristretto255 for the group, filippo.io/edwards25519 for the
// scalar field and crypto/sha512 for hashing.
//
// The backend must be opened once per process before any primitive is used.
// Open runs the initialization asynchronously (a known-answer self-test) and
// every primitive panics with ErrNotInitialized until it has succeeded. All
// values cross this package as byte slices in their canonical little-endian
// encodings.
package bindings
