package bindings

import (
	"errors"

	"github.com/nthparty/oblivious-go/pkg/oblivious/logging"
)

// Encoded sizes used across the backend.
const (
	ScalarSize  = 32
	PointSize   = 32
	UniformSize = 64
	HashSize    = 64
)

// Config captures the parameters of the one-shot backend initialization.
type Config struct {
	// Logger receives lifecycle records. Nil binds to slog.Default().
	Logger logging.Logger

	// SkipSelfTest disables the known-answer checks run before the backend is
	// marked ready.
	SkipSelfTest bool
}

// Handle is an opaque identifier returned by Open.
type Handle uintptr

var (
	// ErrNotInitialized reports a primitive call made before Open completed
	// successfully.
	ErrNotInitialized = errors.New("oblivious: backend not initialized")

	// ErrSelfTest reports that a known-answer check failed during
	// initialization. The backend stays unusable for the process lifetime.
	ErrSelfTest = errors.New("oblivious: backend self-test failed")

	// ErrUnknownHandle reports a Close on a handle that was never issued or
	// was already released.
	ErrUnknownHandle = errors.New("oblivious: unknown backend handle")

	// ErrWrongLength reports an input whose byte length does not match the
	// encoding it claims to be.
	ErrWrongLength = errors.New("oblivious: wrong byte length")

	// ErrInvalidScalar reports bytes that are not a canonical, non-zero
	// scalar modulo the group order.
	ErrInvalidScalar = errors.New("oblivious: invalid scalar")

	// ErrInvalidPoint reports bytes that are not a canonical Ristretto255
	// encoding.
	ErrInvalidPoint = errors.New("oblivious: invalid point")
)
