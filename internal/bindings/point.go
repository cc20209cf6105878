package bindings

import (
	"fmt"

	"github.com/gtank/ristretto255"
)

// PointFromUniform maps 64 uniformly distributed bytes to a group element
// using the ristretto255 hash-to-group map.
func PointFromUniform(b []byte) ([]byte, error) {
	mustBeReady()

	if len(b) != UniformSize {
		return nil, fmt.Errorf("%w: hash-to-group input must be %d bytes, got %d",
			ErrWrongLength, UniformSize, len(b))
	}
	e, err := ristretto255.NewIdentityElement().SetUniformBytes(b)
	if err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// PointValidate reports whether b decodes as a canonical group element.
func PointValidate(b []byte) error {
	mustBeReady()

	_, err := decodePoint(b)
	return err
}

// ScalarMultBase returns s·B for the canonical generator B.
func ScalarMultBase(s []byte) ([]byte, error) {
	mustBeReady()

	x, err := decodeGroupScalar(s)
	if err != nil {
		return nil, err
	}
	return ristretto255.NewIdentityElement().ScalarBaseMult(x).Bytes(), nil
}

// ScalarMult returns s·P.
func ScalarMult(s, p []byte) ([]byte, error) {
	mustBeReady()

	x, err := decodeGroupScalar(s)
	if err != nil {
		return nil, err
	}
	e, err := decodePoint(p)
	if err != nil {
		return nil, err
	}
	return ristretto255.NewIdentityElement().ScalarMult(x, e).Bytes(), nil
}

// PointAdd returns P + Q.
func PointAdd(p, q []byte) ([]byte, error) {
	mustBeReady()
	return pointOp(p, q, (*ristretto255.Element).Add)
}

// PointSub returns P - Q.
func PointSub(p, q []byte) ([]byte, error) {
	mustBeReady()
	return pointOp(p, q, (*ristretto255.Element).Subtract)
}

func pointOp(p, q []byte, op func(e, x, y *ristretto255.Element) *ristretto255.Element) ([]byte, error) {
	x, err := decodePoint(p)
	if err != nil {
		return nil, err
	}
	y, err := decodePoint(q)
	if err != nil {
		return nil, err
	}
	return op(ristretto255.NewIdentityElement(), x, y).Bytes(), nil
}

func decodePoint(b []byte) (*ristretto255.Element, error) {
	if len(b) != PointSize {
		return nil, fmt.Errorf("%w: point must be %d bytes, got %d",
			ErrWrongLength, PointSize, len(b))
	}
	e, err := ristretto255.NewIdentityElement().SetCanonicalBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPoint, err)
	}
	return e, nil
}

// decodeGroupScalar bridges a canonical scalar encoding into the ristretto255
// scalar type. The encodings of both backends are identical.
func decodeGroupScalar(b []byte) (*ristretto255.Scalar, error) {
	if len(b) != ScalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d",
			ErrWrongLength, ScalarSize, len(b))
	}
	s, err := ristretto255.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScalar, err)
	}
	return s, nil
}
