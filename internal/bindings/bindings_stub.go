//go:build !cgo || !swe

package bindings

import (
	"math"

	satellite "github.com/joshuaferrara/go-satellite"
)

// Stub implementations for builds without libswe. They allow the package to
// compile; calculations fail with ErrNotBuilt's text as their diagnostic and
// text queries come back empty.

// Available reports whether libswe is linked into this binary.
func Available() bool { return false }

func (Native) SetEphePath(string) {}

func (Native) SetJPLFile(string) {}

func (Native) CalcUT(float64, int32, int32) ([6]float64, [MaxChars]byte, int32) {
	var serr [MaxChars]byte
	copy(serr[:MaxChars-1], ErrNotBuilt.Error())
	return [6]float64{}, serr, -1
}

// JulDay falls back to the Vallado day-count formula, which only covers the
// Gregorian calendar between 1900 and 2100.
func (Native) JulDay(year, month, day int, hour float64, _ int) float64 {
	whole, frac := math.Modf(hour)
	secs := frac * 3600
	minutes := int(secs / 60)
	seconds := secs - float64(minutes*60)
	wholeSec, subSec := math.Modf(seconds)
	return satellite.JDay(year, month, day, int(whole), minutes, int(wholeSec)) + subSec/86400
}

func (Native) Version() [MaxChars]byte { return [MaxChars]byte{} }

func (Native) LibraryPath() [MaxChars]byte { return [MaxChars]byte{} }

func (Native) PlanetName(int32) [MaxChars]byte { return [MaxChars]byte{} }

func (Native) CurrentFileData(int32) ([]byte, float64, float64, int32, bool) {
	return nil, 0, 0, 0, false
}

func (Native) Close() {}
