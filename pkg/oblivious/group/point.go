package group

import (
	"fmt"

	"github.com/nthparty/oblivious-go/internal/bindings"
	"github.com/nthparty/oblivious-go/pkg/oblivious/sodium"
)

// PointSize is the length of a point encoding.
const PointSize = sodium.PointSize

// Point is a Ristretto255 group element held as its canonical 32-byte
// encoding.
//
// NewPoint and the PointFrom* decoders trust their input and only check the
// length; the group operations report ErrInvalidPoint when they meet bytes
// that do not decode. ParsePoint validates up front.
type Point struct {
	b [PointSize]byte
}

// NewPoint wraps 32 bytes as a point without checking that they decode. A nil
// b yields a random point.
func NewPoint(b []byte) (Point, error) {
	if b == nil {
		return RandomPoint(), nil
	}
	if len(b) != PointSize {
		return Point{}, opError("NewPoint", fmt.Errorf("%w: want %d bytes, got %d", ErrWrongLength, PointSize, len(b)))
	}
	return pointOf(b), nil
}

// ParsePoint is NewPoint followed by a decoding check.
func ParsePoint(b []byte) (Point, error) {
	if b == nil {
		return Point{}, opError("ParsePoint", ErrWrongLength)
	}
	p, err := NewPoint(b)
	if err != nil {
		return Point{}, err
	}
	if !p.Valid() {
		return Point{}, opError("ParsePoint", ErrInvalidPoint)
	}
	return p, nil
}

// RandomPoint returns a uniformly random point.
func RandomPoint() Point {
	b, err := sodium.Pnt(nil)
	if err != nil {
		// Pnt(nil) always maps a 64-byte digest.
		panic(opError("RandomPoint", err))
	}
	return pointOf(b)
}

// MapToPoint maps a 64-byte string to a point. The input is not hashed.
func MapToPoint(b []byte) (Point, error) {
	if b == nil {
		return Point{}, opError("MapToPoint", ErrWrongLength)
	}
	p, err := sodium.Pnt(b)
	if err != nil {
		return Point{}, opError("MapToPoint", err)
	}
	return pointOf(p), nil
}

// HashToPoint hashes m with SHA-512 and maps the digest to a point.
func HashToPoint[T ~string | ~[]byte](m T) Point {
	h := sodium.Hash(m)
	defer bindings.ZeroizeBytes(h)
	p, err := sodium.Pnt(h)
	if err != nil {
		panic(opError("HashToPoint", err))
	}
	return pointOf(p)
}

// BasePoint returns s·B, where B is the group generator. The scalar is
// re-validated, so the zero Scalar is rejected.
func BasePoint(s Scalar) (Point, error) {
	if err := s.check("BasePoint"); err != nil {
		return Point{}, err
	}
	b, err := sodium.Bas(s.b[:])
	if err != nil {
		return Point{}, opError("BasePoint", err)
	}
	return pointOf(b), nil
}

// PointFromBase64 decodes a padded standard base64 point encoding. The result
// is not checked for validity.
func PointFromBase64(s string) (Point, error) {
	return pointFromEncoding("PointFromBase64", sodium.FromBase64, s)
}

// PointFromHex decodes a hexadecimal point encoding. The result is not
// checked for validity.
func PointFromHex(s string) (Point, error) {
	return pointFromEncoding("PointFromHex", sodium.FromHex, s)
}

// PointFromString interprets the bytes of s as a point encoding.
func PointFromString(s string) (Point, error) {
	return pointFromEncoding("PointFromString", func(s string) ([]byte, error) {
		return sodium.FromString(s), nil
	}, s)
}

func pointFromEncoding(op string, decode func(string) ([]byte, error), s string) (Point, error) {
	b, err := sodium.Fixed(decode, s, PointSize)
	if err != nil {
		return Point{}, opError(op, err)
	}
	return pointOf(b), nil
}

func pointOf(b []byte) Point {
	var p Point
	copy(p.b[:], b)
	return p
}

// Mul returns s·p, the same value as s.MulPoint(p).
func (p Point) Mul(s Scalar) (Point, error) {
	if err := s.check("Mul"); err != nil {
		return Point{}, err
	}
	b, err := sodium.Mul(s.b[:], p.b[:])
	if err != nil {
		return Point{}, opError("Mul", err)
	}
	return pointOf(b), nil
}

// Add returns the group sum p+q.
func (p Point) Add(q Point) (Point, error) {
	b, err := sodium.Add(p.b[:], q.b[:])
	if err != nil {
		return Point{}, opError("Add", err)
	}
	return pointOf(b), nil
}

// Sub returns the group difference p-q.
func (p Point) Sub(q Point) (Point, error) {
	b, err := sodium.Sub(p.b[:], q.b[:])
	if err != nil {
		return Point{}, opError("Sub", err)
	}
	return pointOf(b), nil
}

// Bytes returns a copy of the encoding.
func (p Point) Bytes() []byte {
	out := make([]byte, PointSize)
	copy(out, p.b[:])
	return out
}

// Array returns the encoding by value.
func (p Point) Array() [PointSize]byte {
	return p.b
}

// Equal reports, in constant time, whether p and q have the same encoding.
func (p Point) Equal(q Point) bool {
	return sodium.Equal(p.b[:], q.b[:])
}

// IsIdentity reports whether p encodes the identity element.
func (p Point) IsIdentity() bool {
	var zero [PointSize]byte
	return sodium.Equal(p.b[:], zero[:])
}

// Valid reports whether p decodes as a group element.
func (p Point) Valid() bool {
	return sodium.Valid(p.b[:])
}

// ToBase64 returns the padded standard base64 encoding.
func (p Point) ToBase64() string {
	return sodium.ToBase64(p.b[:])
}

// ToHex returns the lowercase hexadecimal encoding.
func (p Point) ToHex() string {
	return sodium.ToHex(p.b[:])
}

// ToString returns the raw encoding as a string.
func (p Point) ToString() string {
	return sodium.ToString(p.b[:])
}

// String implements fmt.Stringer with the hexadecimal encoding.
func (p Point) String() string {
	return "Point(" + p.ToHex() + ")"
}

// MarshalText implements encoding.TextMarshaler using base64.
func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.ToBase64()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded point is
// validated.
func (p *Point) UnmarshalText(text []byte) error {
	v, err := PointFromBase64(string(text))
	if err != nil {
		return err
	}
	if !v.Valid() {
		return opError("UnmarshalText", ErrInvalidPoint)
	}
	*p = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p Point) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The point is
// validated.
func (p *Point) UnmarshalBinary(data []byte) error {
	if len(data) != PointSize {
		return opError("UnmarshalBinary", ErrWrongLength)
	}
	v, err := ParsePoint(data)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (Point) isOperand() {}
