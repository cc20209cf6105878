package oblivious

import "github.com/nthparty/oblivious-go/internal/bindings"

// Ready returns a channel that is closed once the backend initialization has
// finished, successfully or not. It never closes if Open was never called.
func Ready() <-chan struct{} {
	return bindings.Ready()
}

// Err reports why initialization failed. It returns nil while
// initialization is pending and after it succeeded.
func Err() error {
	return RemapError(bindings.Err())
}

// Initialized reports whether the primitives may be called.
func Initialized() bool {
	return bindings.Initialized()
}
