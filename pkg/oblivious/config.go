package oblivious

import (
	"github.com/nthparty/oblivious-go/internal/bindings"
	"github.com/nthparty/oblivious-go/pkg/oblivious/logging"
)

// Config expresses the knobs of the process-wide backend initialization.
// Only the Config passed to the first Open is applied; later calls share the
// already initialized backend.
type Config struct {
	// Logger receives lifecycle records from the library and the backend.
	// Leaving it nil routes records to slog.Default().
	Logger logging.Logger

	// SkipSelfTest disables the known-answer checks (generator encoding,
	// base multiplication, scalar inversion, SHA-512) run before the backend
	// is marked ready.
	SkipSelfTest bool
}

func (c Config) toBindings() bindings.Config {
	return bindings.Config{
		Logger:       c.Logger,
		SkipSelfTest: c.SkipSelfTest,
	}
}
