package swe

import (
	"errors"
	"fmt"

	"github.com/libswe/swe-go/internal/bindings"
)

var (
	// ErrNotBuilt reports that libswe was not linked into this binary.
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrInvalidText reports a library text buffer that is not valid UTF-8.
	ErrInvalidText = errors.New("swe: library returned invalid text")

	// ErrNoFileLoaded reports that no ephemeris file is loaded at the
	// requested file index.
	ErrNoFileLoaded = errors.New("swe: no ephemeris file loaded")
)

// CalcError is a calculation the library rejected. Code is the negative
// status swe_calc_ut returned and Message its diagnostic text.
type CalcError struct {
	Body    Body
	Flags   Flag
	Code    int32
	Message string

	// Err is ErrInvalidText when the diagnostic could not be decoded as-is.
	Err error
}

func (e *CalcError) Error() string {
	return fmt.Sprintf("swe: calc %s [%s] failed (code %d): %s", e.Body, e.Flags, e.Code, e.Message)
}

func (e *CalcError) Unwrap() error {
	return e.Err
}
