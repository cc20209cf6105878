package oblivious

import "github.com/nthparty/oblivious-go/internal/bindings"

var (
	// Version is populated at build time via ldflags.
	Version = "v0.0.0-in-progress"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// BackendVersion returns the resolved module versions of the group backend,
// or "unknown" when the binary carries no build information.
func BackendVersion() string {
	if v := bindings.Version(); v != "" {
		return v
	}
	return "unknown"
}
