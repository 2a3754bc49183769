package swe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/libswe/swe-go/internal/bindings"
	"github.com/libswe/swe-go/pkg/swe/logging"
	"github.com/libswe/swe-go/pkg/swe/metrics"
)

// Ephemeris guards the library's global state. Use Default; there is exactly
// one per process because libswe has exactly one set of globals.
type Ephemeris struct {
	surface   surface
	lookupEnv func(string) (string, bool)

	configureOnce sync.Once
	closeOnce     sync.Once
	state         atomic.Int32

	// mu serializes every call into the library except JulDay.
	mu       sync.Mutex
	ephePath string

	obsMu     sync.RWMutex
	logger    logging.Logger
	collector *metrics.Collector
}

var defaultEphemeris = sync.OnceValue(func() *Ephemeris {
	return newEphemeris(bindings.Native{})
})

// Default returns the process-wide Ephemeris bound to libswe.
func Default() *Ephemeris {
	return defaultEphemeris()
}

func newEphemeris(s surface) *Ephemeris {
	return &Ephemeris{
		surface:   s,
		lookupEnv: os.LookupEnv,
		logger:    logging.New(nil),
	}
}

// SetLogger replaces the logger. A nil logger discards output.
func (e *Ephemeris) SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	e.obsMu.Lock()
	e.logger = l
	e.obsMu.Unlock()
}

// SetCollector attaches Prometheus metrics. Nil detaches them.
func (e *Ephemeris) SetCollector(c *metrics.Collector) {
	e.obsMu.Lock()
	e.collector = c
	e.obsMu.Unlock()
	if c != nil {
		c.SetState(int(e.State()))
	}
}

func (e *Ephemeris) observers() (logging.Logger, *metrics.Collector) {
	e.obsMu.RLock()
	defer e.obsMu.RUnlock()
	return e.logger, e.collector
}

// State reports the current lifecycle phase.
func (e *Ephemeris) State() LifecycleState {
	return LifecycleState(e.state.Load())
}

func (e *Ephemeris) transition(to LifecycleState) {
	e.state.Store(int32(to))
	logger, collector := e.observers()
	if collector != nil {
		collector.SetState(int(to))
	}
	logger.Info(context.Background(), "ephemeris state changed", logging.KeyState, to.String())
}

// SetEphePath configures the library's data path and moves the Ephemeris to
// Ready. Only the first call has any effect.
//
// When SE_EPHE_PATH is set, path is ignored and the library resolves the data
// path itself. Otherwise a non-empty path must name an existing directory
// shorter than MaxChars bytes; an empty path selects the library default.
// SetEphePath panics on an invalid path or when called after Close. A call
// rejected for its path leaves the Ephemeris Unconfigured, so a later call
// with a valid path still configures it.
func (e *Ephemeris) SetEphePath(path string) {
	if e.State() == Closed {
		e.violation("SetEphePath", "invoked SetEphePath after closing the ephemeris files")
	}
	_, override := e.lookupEnv(EnvEphePath)
	// Must stay outside Do: a panic there still consumes the Once.
	if !override && path != "" && e.State() == Unconfigured {
		e.checkEphePath(path)
	}
	e.configureOnce.Do(func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		if e.State() == Closed {
			e.violation("SetEphePath", "invoked SetEphePath after closing the ephemeris files")
		}

		logger, _ := e.observers()
		ctx := context.Background()
		switch {
		case override:
			if path != "" {
				logger.Warn(ctx, "ephemeris path overridden by environment", "env", EnvEphePath, logging.KeyPath, path)
			}
			e.surface.SetEphePath("")
		case path != "":
			e.surface.SetEphePath(path)
			e.ephePath = path
			logger.Info(ctx, "ephemeris path set", logging.KeyPath, path)
		default:
			e.surface.SetEphePath("")
		}

		e.transition(Ready)
	})
}

func (e *Ephemeris) checkEphePath(path string) {
	if len(path) >= MaxChars {
		e.violation("SetEphePath", "ephemeris path is %d bytes, must be shorter than %d", len(path), MaxChars)
	}
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		e.violation("SetEphePath", "ephemeris path %q is not a directory", path)
	}
}

// Close releases the library's files and memory and moves the Ephemeris to
// Closed. Only the first call has any effect. Closing an Ephemeris that was
// never configured is allowed.
func (e *Ephemeris) Close() {
	e.closeOnce.Do(func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.surface.Close()
		e.transition(Closed)
	})
}

// SetJPLFile selects the JPL ephemeris file the library reads when the
// JPLEphemeris flag is used. name is resolved against SE_EPHE_PATH when set,
// else against the configured data path, and must name an existing file.
// SetJPLFile panics when the Ephemeris is not Ready or the file is missing.
func (e *Ephemeris) SetJPLFile(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.assertReady("SetJPLFile")

	if len(name) >= MaxChars {
		e.violation("SetJPLFile", "JPL file name is %d bytes, must be shorter than %d", len(name), MaxChars)
	}
	dir := e.ephePath
	if env, ok := e.lookupEnv(EnvEphePath); ok {
		dir = env
	}
	full := filepath.Join(dir, name)
	fi, err := os.Stat(full)
	if err != nil || !fi.Mode().IsRegular() {
		e.violation("SetJPLFile", "JPL file %q does not exist", full)
	}
	e.surface.SetJPLFile(name)
}

// Apply configures the Ephemeris from cfg.
func (e *Ephemeris) Apply(cfg Config) {
	e.SetEphePath(cfg.EphePath)
	if cfg.JPLFile != "" {
		e.SetJPLFile(cfg.JPLFile)
	}
}

// assertReady must be called with mu held.
func (e *Ephemeris) assertReady(op string) {
	switch e.State() {
	case Closed:
		e.violation(op, "invoked %s after closing the ephemeris files", op)
	case Unconfigured:
		e.violation(op, "invoked %s before SetEphePath", op)
	}
}

func (e *Ephemeris) violation(op, format string, args ...any) {
	msg := "swe: " + fmt.Sprintf(format, args...)
	logger, collector := e.observers()
	if collector != nil {
		collector.PreconditionViolation(op)
	}
	logger.Error(context.Background(), "precondition violated", logging.KeyOperation, op, logging.KeyReason, msg)
	panic(msg)
}

// locked runs fn against the library once the Ephemeris is known to be Ready.
func locked[T any](e *Ephemeris, op string, fn func(s surface) T) T {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.assertReady(op)
	return fn(e.surface)
}
