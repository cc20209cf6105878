package oblivious

import (
	"errors"

	"github.com/nthparty/oblivious-go/internal/bindings"
	"github.com/nthparty/oblivious-go/pkg/oblivious/group"
)

// ErrLibraryClosed is returned when a Library is used after Close.
var ErrLibraryClosed = errors.New("oblivious: library closed")

// Errors re-exported from the backend and the group package so callers can
// match every failure with errors.Is against this package alone.
var (
	ErrNotInitialized = bindings.ErrNotInitialized
	ErrSelfTest       = bindings.ErrSelfTest

	ErrInvalidScalar   = group.ErrInvalidScalar
	ErrInvalidPoint    = group.ErrInvalidPoint
	ErrWrongLength     = group.ErrWrongLength
	ErrInvalidEncoding = group.ErrInvalidEncoding

	ErrOperatorMisuse           = group.ErrOperatorMisuse
	ErrPointCannotBeLeftOperand = group.ErrPointCannotBeLeftOperand
	ErrMustBeScalarOnLeft       = group.ErrMustBeScalarOnLeft
	ErrUnsupportedOperand       = group.ErrUnsupportedOperand
)

// Error is the operation-tagged error returned by the value types.
type Error = group.Error

// RemapError converts bindings layer errors to public API errors.
func RemapError(err error) error {
	if err == nil {
		return nil
	}
	// A handle only goes missing from the registry once it was released.
	if errors.Is(err, bindings.ErrUnknownHandle) {
		return ErrLibraryClosed
	}
	return err
}
