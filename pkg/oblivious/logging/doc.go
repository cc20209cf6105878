// Package logging provides a minimal logging facade for the oblivious packages.
//
// The Logger interface wraps a subset of log/slog so that applications can
// plug in their own implementation for testing, redaction, or integration with
// an existing logging system.
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use a custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// # Redaction
//
// Scalars are secret in most protocols built on this module. Never log their
// encodings; use Redacted instead:
//
//	logger.Debug(ctx, "blinding factor drawn", logging.Redacted("scalar"))
//	// Logs: scalar=[redacted]
//
// group.Scalar implements slog.LogValuer and renders as the placeholder, so
// passing a Scalar directly as a log attribute is also safe.
package logging
