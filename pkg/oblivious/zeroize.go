package oblivious

import "github.com/nthparty/oblivious-go/internal/bindings"

// ZeroizeBytes overwrites buf with zeros, for callers that hold scalar
// encodings or seeds in their own buffers. Copies made elsewhere (for
// example by Bytes or an encoder) are not affected.
func ZeroizeBytes(buf []byte) {
	bindings.ZeroizeBytes(buf)
}
