package group

import (
	"errors"
	"fmt"

	"github.com/nthparty/oblivious-go/pkg/oblivious/sodium"
)

var (
	// ErrInvalidScalar reports bytes that are not a canonical non-zero scalar,
	// or an arithmetic result that is zero.
	ErrInvalidScalar = sodium.ErrInvalidScalar

	// ErrInvalidPoint reports bytes that do not decode as a group element.
	ErrInvalidPoint = sodium.ErrInvalidPoint

	// ErrWrongLength reports an encoding of the wrong size.
	ErrWrongLength = sodium.ErrWrongLength

	// ErrInvalidEncoding reports a malformed hex or base64 string.
	ErrInvalidEncoding = sodium.ErrInvalidEncoding

	// ErrOperatorMisuse is the parent of every operand-ordering error raised by
	// Mul.
	ErrOperatorMisuse = errors.New("oblivious: operator misuse")

	// ErrPointCannotBeLeftOperand reports a point on the left-hand side of a
	// scalar multiplication.
	ErrPointCannotBeLeftOperand = fmt.Errorf("%w: point must be on right-hand side of multiplication operator", ErrOperatorMisuse)

	// ErrMustBeScalarOnLeft reports a multiplication whose left operand is not
	// a scalar.
	ErrMustBeScalarOnLeft = fmt.Errorf("%w: scalar must be on left-hand side of multiplication operator", ErrOperatorMisuse)

	// ErrUnsupportedOperand reports a right operand that is neither a scalar
	// nor a point.
	ErrUnsupportedOperand = fmt.Errorf("%w: right operand must be a scalar or a point", ErrOperatorMisuse)
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("group.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
