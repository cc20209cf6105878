package oblivious

import "github.com/nthparty/oblivious-go/pkg/oblivious/group"

// Type aliases so callers can work with oblivious.Point and oblivious.Scalar
// without importing the group package.

// Point is an alias for group.Point.
type Point = group.Point

// Scalar is an alias for group.Scalar.
type Scalar = group.Scalar

// Operand is an alias for group.Operand.
type Operand = group.Operand

// Encoded sizes.
const (
	PointSize  = group.PointSize
	ScalarSize = group.ScalarSize
)

// NewPoint wraps 32 bytes as a point without validation; nil yields a random
// point.
func NewPoint(b []byte) (Point, error) { return group.NewPoint(b) }

// ParsePoint decodes and validates a point.
func ParsePoint(b []byte) (Point, error) { return group.ParsePoint(b) }

// RandomPoint returns a uniformly random point.
func RandomPoint() Point { return group.RandomPoint() }

// MapToPoint maps 64 bytes to a point.
func MapToPoint(b []byte) (Point, error) { return group.MapToPoint(b) }

// HashToPoint hashes m and maps the digest to a point.
func HashToPoint[T ~string | ~[]byte](m T) Point { return group.HashToPoint(m) }

// BasePoint returns s times the group generator.
func BasePoint(s Scalar) (Point, error) { return group.BasePoint(s) }

// NewScalar validates b as a scalar; nil yields a random scalar.
func NewScalar(b []byte) (Scalar, error) { return group.NewScalar(b) }

// RandomScalar returns a uniformly random non-zero scalar.
func RandomScalar() Scalar { return group.RandomScalar() }

// HashToScalar derives a scalar from m by repeated SHA-512 hashing.
func HashToScalar[T ~string | ~[]byte](m T) Scalar { return group.HashToScalar(m) }

// Mul multiplies two operands with the scalar on the left.
func Mul(x, y Operand) (Operand, error) { return group.Mul(x, y) }
