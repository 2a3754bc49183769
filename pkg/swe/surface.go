package swe

import "github.com/libswe/swe-go/internal/bindings"

// MaxChars is the size of the library's text buffers. Data paths and file
// names must be shorter than this.
const MaxChars = bindings.MaxChars

// EnvEphePath names the environment variable that, when present, makes the
// library resolve its data path on its own.
const EnvEphePath = "SE_EPHE_PATH"

// surface is the foreign calculation surface. bindings.Native implements it
// against libswe; tests substitute a fake.
type surface interface {
	SetEphePath(path string)
	SetJPLFile(name string)
	CalcUT(jdUT float64, body int32, flags int32) ([6]float64, [MaxChars]byte, int32)
	JulDay(year, month, day int, hour float64, calendar int) float64
	Version() [MaxChars]byte
	LibraryPath() [MaxChars]byte
	PlanetName(body int32) [MaxChars]byte
	CurrentFileData(ifno int32) (path []byte, start, end float64, denum int32, ok bool)
	Close()
}

var _ surface = bindings.Native{}

// NativeAvailable reports whether libswe is linked into this binary.
func NativeAvailable() bool {
	return bindings.Available()
}

// RequireNative returns ErrNotBuilt when libswe is not linked.
func RequireNative() error {
	if !bindings.Available() {
		return ErrNotBuilt
	}
	return nil
}
