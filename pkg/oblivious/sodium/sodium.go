package sodium

import (
	"crypto/subtle"
	"fmt"

	"github.com/nthparty/oblivious-go/internal/bindings"
)

// Encoded sizes.
const (
	ScalarSize = bindings.ScalarSize
	PointSize  = bindings.PointSize
	HashSize   = bindings.HashSize
)

var (
	// ErrWrongLength reports an input of the wrong byte length.
	ErrWrongLength = bindings.ErrWrongLength

	// ErrInvalidScalar reports a non-canonical scalar given to an operation
	// that requires a pre-validated one.
	ErrInvalidScalar = bindings.ErrInvalidScalar

	// ErrInvalidPoint reports bytes that do not decode as a group element.
	ErrInvalidPoint = bindings.ErrInvalidPoint
)

// Rnd returns a uniformly random, non-zero, canonical scalar.
func Rnd() []byte {
	return bindings.ScalarRandom()
}

// Scl returns s when it is a valid scalar and reports false otherwise; a
// rejected candidate is not an error. A nil s yields a fresh random scalar.
// Inputs longer than 32 bytes (up to 64) are reduced modulo the group order
// before the check. A valid scalar is canonical and non-zero.
func Scl(s []byte) ([]byte, bool) {
	if s == nil {
		return Rnd(), true
	}
	if len(s) > ScalarSize {
		r, err := bindings.ScalarReduce(s)
		if err != nil {
			return nil, false
		}
		s = r
	}
	if len(s) != ScalarSize || !bindings.ScalarCanonical(s) || bindings.ScalarIsZero(s) {
		return nil, false
	}
	out := make([]byte, ScalarSize)
	copy(out, s)
	return out, true
}

// Inv returns the inverse of s modulo the group order. The caller must have
// validated s with Scl.
func Inv(s []byte) ([]byte, error) {
	return bindings.ScalarInvert(s)
}

// Smu returns s*t modulo the group order.
func Smu(s, t []byte) ([]byte, error) {
	return bindings.ScalarMul(s, t)
}

// Sad returns s1+s2 modulo the group order.
func Sad(s1, s2 []byte) ([]byte, error) {
	return bindings.ScalarAdd(s1, s2)
}

// Ssb returns s1-s2 modulo the group order.
func Ssb(s1, s2 []byte) ([]byte, error) {
	return bindings.ScalarSub(s1, s2)
}

// Pnt maps a 64-byte string to a uniformly distributed point. The input is
// not hashed; callers with arbitrary-length data should use Hash first. A nil
// input maps the SHA-512 digest of a fresh random scalar.
func Pnt(b []byte) ([]byte, error) {
	if b == nil {
		seed := Hash(Rnd())
		defer bindings.ZeroizeBytes(seed)
		return bindings.PointFromUniform(seed)
	}
	return bindings.PointFromUniform(b)
}

// Bas returns e·B, where B is the group generator.
func Bas(e []byte) ([]byte, error) {
	return bindings.ScalarMultBase(e)
}

// Mul returns s·p.
func Mul(s, p []byte) ([]byte, error) {
	return bindings.ScalarMult(s, p)
}

// Add returns the group sum x+y.
func Add(x, y []byte) ([]byte, error) {
	return bindings.PointAdd(x, y)
}

// Sub returns the group difference x-y.
func Sub(x, y []byte) ([]byte, error) {
	return bindings.PointSub(x, y)
}

// Hash returns the 64-byte SHA-512 digest of a string or byte slice.
func Hash[T ~string | ~[]byte](m T) []byte {
	return bindings.Hash([]byte(m))
}

// Valid reports whether p decodes as a canonical group element.
func Valid(p []byte) bool {
	return bindings.PointValidate(p) == nil
}

// Compare orders a and b as little-endian unsigned integers and returns -1, 0
// or 1. The running time depends only on the length of the inputs, which must
// match.
func Compare(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: cannot compare %d and %d bytes", ErrWrongLength, len(a), len(b))
	}
	gt, eq := 0, 1
	for i := len(a) - 1; i >= 0; i-- {
		x, y := int(a[i]), int(b[i])
		// gt latches on the most significant differing byte.
		gt |= eq & subtle.ConstantTimeLessOrEq(y+1, x)
		eq &= subtle.ConstantTimeByteEq(a[i], b[i])
	}
	return subtle.ConstantTimeSelect(eq, 0, subtle.ConstantTimeSelect(gt, 1, -1)), nil
}

// Equal reports, in constant time, whether a and b hold the same bytes.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
