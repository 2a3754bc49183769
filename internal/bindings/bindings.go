//go:build cgo && swe

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}/../../third_party/swisseph -I/usr/local/include -I/usr/include/libswe
#cgo LDFLAGS: -L${SRCDIR}/../../third_party/swisseph -L/usr/local/lib -lswe -lm
#cgo linux LDFLAGS: -ldl
#include <stdlib.h>
#include <string.h>
#include "swephexp.h"
*/
import "C"

import "unsafe"

// Available reports whether libswe is linked into this binary.
func Available() bool { return true }

// SetEphePath points the library at a data directory. An empty path passes
// NULL so the library falls back to SE_EPHE_PATH or its compiled default.
func (Native) SetEphePath(path string) {
	if path == "" {
		C.swe_set_ephe_path(nil)
		return
	}
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))
	C.swe_set_ephe_path(cPath)
}

// SetJPLFile selects the JPL ephemeris file, relative to the data path.
func (Native) SetJPLFile(name string) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	C.swe_set_jpl_file(cName)
}

// CalcUT runs swe_calc_ut with zeroed result and error buffers.
func (Native) CalcUT(jdUT float64, body int32, flags int32) ([6]float64, [MaxChars]byte, int32) {
	var xx [6]C.double
	var serr [MaxChars]C.char

	rc := C.swe_calc_ut(C.double(jdUT), C.int32(body), C.int32(flags), &xx[0], &serr[0])

	var out [6]float64
	for i := range xx {
		out[i] = float64(xx[i])
	}
	return out, charsToBytes(&serr), int32(rc)
}

// JulDay wraps swe_julday.
func (Native) JulDay(year, month, day int, hour float64, calendar int) float64 {
	return float64(C.swe_julday(C.int(year), C.int(month), C.int(day), C.double(hour), C.int(calendar)))
}

// Version fills a buffer with swe_version.
func (Native) Version() [MaxChars]byte {
	var buf [MaxChars]C.char
	C.swe_version(&buf[0])
	return charsToBytes(&buf)
}

// LibraryPath fills a buffer with swe_get_library_path.
func (Native) LibraryPath() [MaxChars]byte {
	var buf [MaxChars]C.char
	C.swe_get_library_path(&buf[0])
	return charsToBytes(&buf)
}

// PlanetName fills a buffer with swe_get_planet_name.
func (Native) PlanetName(body int32) [MaxChars]byte {
	var buf [MaxChars]C.char
	C.swe_get_planet_name(C.int(body), &buf[0])
	return charsToBytes(&buf)
}

// CurrentFileData wraps swe_get_current_file_data. The returned path is a
// copy of the library-owned string, read up to its terminator and never past
// MaxChars bytes. The library keeps ownership of the original; it is neither
// freed nor written. ok is false when no file is loaded for ifno.
func (Native) CurrentFileData(ifno int32) (path []byte, start, end float64, denum int32, ok bool) {
	var tfstart, tfend C.double
	var cdenum C.int

	p := C.swe_get_current_file_data(C.int(ifno), &tfstart, &tfend, &cdenum)
	if p == nil {
		return nil, 0, 0, 0, false
	}
	n := C.strnlen(p, C.size_t(MaxChars))
	if n > 0 {
		path = C.GoBytes(unsafe.Pointer(p), C.int(n))
	}
	return path, float64(tfstart), float64(tfend), int32(cdenum), true
}

// Close wraps swe_close. It must run at most once per process.
func (Native) Close() {
	C.swe_close()
}

func charsToBytes(src *[MaxChars]C.char) [MaxChars]byte {
	var out [MaxChars]byte
	copy(out[:], unsafe.Slice((*byte)(unsafe.Pointer(&src[0])), MaxChars))
	return out
}
