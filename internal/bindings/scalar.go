package bindings

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"filippo.io/edwards25519"
)

var zeroScalar [ScalarSize]byte

// ScalarRandom returns a uniformly random, non-zero, canonical scalar.
func ScalarRandom() []byte {
	mustBeReady()

	var seed [UniformSize]byte
	defer ZeroizeBytes(seed[:])
	for {
		// crypto/rand.Read never returns an error.
		_, _ = rand.Read(seed[:])
		s, err := edwards25519.NewScalar().SetUniformBytes(seed[:])
		if err != nil {
			panic("bindings: uniform scalar: " + err.Error())
		}
		if out := s.Bytes(); !ScalarIsZero(out) {
			return out
		}
	}
}

// ScalarReduce interprets up to 64 little-endian bytes as an integer and
// reduces it modulo the group order.
func ScalarReduce(b []byte) ([]byte, error) {
	mustBeReady()

	if len(b) > UniformSize {
		return nil, fmt.Errorf("%w: reduce accepts at most %d bytes, got %d",
			ErrWrongLength, UniformSize, len(b))
	}
	var wide [UniformSize]byte
	defer ZeroizeBytes(wide[:])
	copy(wide[:], b)

	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// ScalarCanonical reports whether b is the canonical encoding of a value
// below the group order. Zero is canonical.
func ScalarCanonical(b []byte) bool {
	mustBeReady()

	_, err := decodeScalar(b)
	return err == nil
}

// ScalarIsZero reports, in constant time, whether b is the all-zero encoding.
func ScalarIsZero(b []byte) bool {
	return subtle.ConstantTimeCompare(b, zeroScalar[:]) == 1
}

// ScalarAdd returns (a + b) mod L.
func ScalarAdd(a, b []byte) ([]byte, error) {
	mustBeReady()
	return scalarOp(a, b, (*edwards25519.Scalar).Add)
}

// ScalarSub returns (a - b) mod L.
func ScalarSub(a, b []byte) ([]byte, error) {
	mustBeReady()
	return scalarOp(a, b, (*edwards25519.Scalar).Subtract)
}

// ScalarMul returns (a * b) mod L.
func ScalarMul(a, b []byte) ([]byte, error) {
	mustBeReady()
	return scalarOp(a, b, (*edwards25519.Scalar).Multiply)
}

// ScalarInvert returns 1/a mod L. The inverse of zero is zero.
func ScalarInvert(a []byte) ([]byte, error) {
	mustBeReady()

	x, err := decodeScalar(a)
	if err != nil {
		return nil, err
	}
	return edwards25519.NewScalar().Invert(x).Bytes(), nil
}

func scalarOp(a, b []byte, op func(s, x, y *edwards25519.Scalar) *edwards25519.Scalar) ([]byte, error) {
	x, err := decodeScalar(a)
	if err != nil {
		return nil, err
	}
	y, err := decodeScalar(b)
	if err != nil {
		return nil, err
	}
	return op(edwards25519.NewScalar(), x, y).Bytes(), nil
}

func decodeScalar(b []byte) (*edwards25519.Scalar, error) {
	if len(b) != ScalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d",
			ErrWrongLength, ScalarSize, len(b))
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScalar, err)
	}
	return s, nil
}
