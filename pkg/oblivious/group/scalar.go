package group

import (
	"log/slog"

	"github.com/nthparty/oblivious-go/internal/bindings"
	"github.com/nthparty/oblivious-go/pkg/oblivious/logging"
	"github.com/nthparty/oblivious-go/pkg/oblivious/sodium"
)

// ScalarSize is the length of a scalar encoding.
const ScalarSize = sodium.ScalarSize

// Scalar is a non-zero integer modulo the group order
// L = 2^252 + 27742317777372353535851937790883648493, held as its canonical
// 32-byte little-endian encoding.
//
// Scalars are immutable values: every operation returns a new Scalar and the
// accessors return copies. Every Scalar produced by this package passed Scl;
// the zero value does not and is rejected by the operations that re-validate.
//
// Scalar deliberately does not print its value: String and LogValue return a
// redaction placeholder. Use ToHex or ToBase64 for explicit serialization.
type Scalar struct {
	b [ScalarSize]byte
}

// NewScalar validates b as a scalar. Inputs of up to 64 bytes are reduced
// modulo L first. A nil b yields a random scalar.
func NewScalar(b []byte) (Scalar, error) {
	if b == nil {
		return RandomScalar(), nil
	}
	s, ok := sodium.Scl(b)
	if !ok {
		return Scalar{}, opError("NewScalar", ErrInvalidScalar)
	}
	return scalarOf(s), nil
}

// RandomScalar returns a uniformly random non-zero scalar.
func RandomScalar() Scalar {
	return scalarOf(sodium.Rnd())
}

// ScalarFromBytes is NewScalar with soft failure: a rejected candidate is
// reported by the second result instead of an error.
func ScalarFromBytes(b []byte) (Scalar, bool) {
	s, ok := sodium.Scl(b)
	if !ok {
		return Scalar{}, false
	}
	return scalarOf(s), true
}

// HashToScalar hashes m with SHA-512 and re-hashes the digest until it
// reduces to a valid scalar. A 64-byte digest only fails when it reduces to
// zero, so the loop has no bound but in practice runs once.
func HashToScalar[T ~string | ~[]byte](m T) Scalar {
	h := sodium.Hash(m)
	s, ok := sodium.Scl(h)
	for !ok {
		next := sodium.Hash(h)
		bindings.ZeroizeBytes(h)
		h = next
		s, ok = sodium.Scl(h)
	}
	bindings.ZeroizeBytes(h)
	return scalarOf(s)
}

// ScalarFromBase64 decodes a padded standard base64 scalar encoding.
func ScalarFromBase64(s string) (Scalar, error) {
	return scalarFromEncoding("ScalarFromBase64", sodium.FromBase64, s)
}

// ScalarFromHex decodes a hexadecimal scalar encoding.
func ScalarFromHex(s string) (Scalar, error) {
	return scalarFromEncoding("ScalarFromHex", sodium.FromHex, s)
}

// ScalarFromString interprets the bytes of s as a scalar encoding.
func ScalarFromString(s string) (Scalar, error) {
	return scalarFromEncoding("ScalarFromString", func(s string) ([]byte, error) {
		return sodium.FromString(s), nil
	}, s)
}

func scalarFromEncoding(op string, decode func(string) ([]byte, error), s string) (Scalar, error) {
	b, err := sodium.Fixed(decode, s, ScalarSize)
	if err != nil {
		return Scalar{}, opError(op, err)
	}
	defer bindings.ZeroizeBytes(b)
	v, ok := sodium.Scl(b)
	if !ok {
		return Scalar{}, opError(op, ErrInvalidScalar)
	}
	return scalarOf(v), nil
}

// scalarOf copies an already validated encoding.
func scalarOf(b []byte) Scalar {
	var s Scalar
	copy(s.b[:], b)
	return s
}

// checkedScalar re-validates the result of an arithmetic primitive, the same
// way the constructor does.
func checkedScalar(op string, b []byte, err error) (Scalar, error) {
	if err != nil {
		return Scalar{}, opError(op, err)
	}
	s, ok := sodium.Scl(b)
	if !ok {
		return Scalar{}, opError(op, ErrInvalidScalar)
	}
	return scalarOf(s), nil
}

// check applies Scl to s before it is used as a multiplier.
func (s Scalar) check(op string) error {
	if _, ok := sodium.Scl(s.b[:]); !ok {
		return opError(op, ErrInvalidScalar)
	}
	return nil
}

// Invert returns the inverse of s modulo L.
func (s Scalar) Invert() (Scalar, error) {
	b, err := sodium.Inv(s.b[:])
	return checkedScalar("Invert", b, err)
}

// Inverse is an alias of Invert.
func (s Scalar) Inverse() (Scalar, error) {
	return s.Invert()
}

// Add returns s + o mod L. A zero sum is reported as ErrInvalidScalar.
func (s Scalar) Add(o Scalar) (Scalar, error) {
	b, err := sodium.Sad(s.b[:], o.b[:])
	return checkedScalar("Add", b, err)
}

// Sub returns s - o mod L. A zero difference is reported as ErrInvalidScalar.
func (s Scalar) Sub(o Scalar) (Scalar, error) {
	b, err := sodium.Ssb(s.b[:], o.b[:])
	return checkedScalar("Sub", b, err)
}

// Mul returns the product s * o mod L.
func (s Scalar) Mul(o Scalar) (Scalar, error) {
	b, err := sodium.Smu(s.b[:], o.b[:])
	return checkedScalar("Mul", b, err)
}

// MulPoint returns s·p. The scalar is re-validated, so the zero Scalar fails
// with ErrInvalidScalar. It fails with ErrInvalidPoint when p was built
// through the unchecked constructor from bytes that do not decode.
func (s Scalar) MulPoint(p Point) (Point, error) {
	if err := s.check("MulPoint"); err != nil {
		return Point{}, err
	}
	b, err := sodium.Mul(s.b[:], p.b[:])
	if err != nil {
		return Point{}, opError("MulPoint", err)
	}
	return pointOf(b), nil
}

// Bytes returns a copy of the canonical encoding.
func (s Scalar) Bytes() []byte {
	out := make([]byte, ScalarSize)
	copy(out, s.b[:])
	return out
}

// Array returns the canonical encoding by value.
func (s Scalar) Array() [ScalarSize]byte {
	return s.b
}

// Equal reports, in constant time, whether s and o are the same scalar.
func (s Scalar) Equal(o Scalar) bool {
	return sodium.Equal(s.b[:], o.b[:])
}

// IsZero reports whether s is the zero value, which is not a valid scalar.
func (s Scalar) IsZero() bool {
	return bindings.ScalarIsZero(s.b[:])
}

// ToBase64 returns the padded standard base64 encoding.
func (s Scalar) ToBase64() string {
	return sodium.ToBase64(s.b[:])
}

// ToHex returns the lowercase hexadecimal encoding.
func (s Scalar) ToHex() string {
	return sodium.ToHex(s.b[:])
}

// ToString returns the raw encoding as a string.
func (s Scalar) ToString() string {
	return sodium.ToString(s.b[:])
}

// String implements fmt.Stringer without revealing the value.
func (s Scalar) String() string {
	return "Scalar(" + logging.Placeholder() + ")"
}

// LogValue implements slog.LogValuer without revealing the value.
func (s Scalar) LogValue() slog.Value {
	return logging.RedactedValue()
}

// MarshalText implements encoding.TextMarshaler using base64.
func (s Scalar) MarshalText() ([]byte, error) {
	return []byte(s.ToBase64()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and validates the value.
func (s *Scalar) UnmarshalText(text []byte) error {
	v, err := ScalarFromBase64(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s Scalar) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Only exact 32-byte
// canonical encodings are accepted.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != ScalarSize {
		return opError("UnmarshalBinary", ErrWrongLength)
	}
	v, ok := ScalarFromBytes(data)
	if !ok {
		return opError("UnmarshalBinary", ErrInvalidScalar)
	}
	*s = v
	return nil
}

func (Scalar) isOperand() {}
