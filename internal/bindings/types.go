package bindings

import "errors"

// MaxChars is the size of every text buffer the native library writes into
// (AS_MAXCH in swephexp.h). Paths handed to the library must be shorter.
const MaxChars = 256

// GregorianCalendar is the SE_GREG_CAL calendar flag for swe_julday.
const GregorianCalendar = 1

// Native is the foreign calculation surface backed by the linked libswe.
// Its methods are thin: they fill caller-visible fixed-size buffers and
// return them untouched. Decoding and lifecycle checks live in pkg/swe.
//
// The library keeps global state, so a Native must only be driven through a
// single owner that serializes calls.
type Native struct{}

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Build with `-tags swe` and cgo enabled to link libswe.
	ErrNotBuilt = errors.New("swe/internal/bindings: native bindings not built")
)
