// Package logging provides a minimal logging facade for the swe wrapper.
//
// The Logger interface wraps the subset of log/slog the wrapper needs, so
// applications can plug in their own implementation for tests or for an
// existing logging stack.
//
//	logger := logging.New(nil) // slog.Default()
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// Applications already on zap can bridge with NewZap:
//
//	z, _ := zap.NewProduction()
//	swe.Default().SetLogger(logging.NewZap(z))
//
// The wrapper logs lifecycle transitions at info level, calculation failures
// at debug level and precondition violations at error level, just before it
// panics.
package logging
