package oblivious

import (
	"context"
	"sync"

	"github.com/nthparty/oblivious-go/internal/bindings"
	"github.com/nthparty/oblivious-go/pkg/oblivious/logging"
)

// Library represents an opened handle to the backend. The backend itself is
// initialized once per process; each Library only tracks its own handle.
type Library struct {
	cfg    Config
	log    logging.Logger
	mu     sync.Mutex
	handle bindings.Handle
	closed bool
}

// Open starts the backend initialization if it has not run yet and waits for
// it to finish or for ctx to be done. Every operation in the group and
// sodium packages panics with ErrNotInitialized until an Open succeeds.
func Open(ctx context.Context, cfg Config) (*Library, error) {
	log := logging.OrDefault(cfg.Logger).With("component", "oblivious")

	h, err := bindings.Open(ctx, cfg.toBindings())
	if err != nil {
		log.Error(ctx, "open failed", "error", err)
		return nil, RemapError(err)
	}

	log.Debug(ctx, "library opened", "handle", uint64(h))
	return &Library{cfg: cfg, log: log, handle: h}, nil
}

// Close releases the handle. It returns ErrLibraryClosed when called twice.
// Closing does not tear the backend down; other handles and the value types
// keep working.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrLibraryClosed
	}

	if err := bindings.Close(l.handle); err != nil {
		return RemapError(err)
	}

	l.log.Debug(context.Background(), "library closed", "handle", uint64(l.handle))
	l.closed = true
	l.handle = 0
	return nil
}

// Config returns the configuration the library was opened with.
func (l *Library) Config() Config {
	return l.cfg
}
