package group

// Operand is a Scalar or a Point. The interface is sealed.
type Operand interface {
	Bytes() []byte
	isOperand()
}

var (
	_ Operand = Scalar{}
	_ Operand = Point{}
)

// Mul multiplies two operands with the scalar on the left:
//
//	Mul(Scalar, Scalar) -> Scalar  (product mod L)
//	Mul(Scalar, Point)  -> Point   (scalar multiplication)
//
// A Point on the left fails with ErrPointCannotBeLeftOperand, any other left
// operand with ErrMustBeScalarOnLeft, and a right operand that is neither
// kind with ErrUnsupportedOperand. All three match ErrOperatorMisuse.
func Mul(x, y Operand) (Operand, error) {
	switch l := deref(x).(type) {
	case Scalar:
		switch r := deref(y).(type) {
		case Scalar:
			s, err := l.Mul(r)
			if err != nil {
				return nil, err
			}
			return s, nil
		case Point:
			p, err := l.MulPoint(r)
			if err != nil {
				return nil, err
			}
			return p, nil
		default:
			return nil, opError("Mul", ErrUnsupportedOperand)
		}
	case Point:
		return nil, opError("Mul", ErrPointCannotBeLeftOperand)
	default:
		return nil, opError("Mul", ErrMustBeScalarOnLeft)
	}
}

// deref turns non-nil pointers to operands into values; nil pointers become
// a nil Operand.
func deref(o Operand) Operand {
	switch v := o.(type) {
	case *Scalar:
		if v == nil {
			return nil
		}
		return *v
	case *Point:
		if v == nil {
			return nil
		}
		return *v
	}
	return o
}
