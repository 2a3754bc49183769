package swe

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/libswe/swe-go/pkg/swe/logging"
)

// fakeSurface records calls into the foreign surface.
type fakeSurface struct {
	setPathCalls atomic.Int32
	closeCalls   atomic.Int32
	calcCalls    atomic.Int32
	inFlight     atomic.Int32
	overlapped   atomic.Bool

	mu      sync.Mutex
	path    string
	jplFile string

	calc      func(jd float64, body, flags int32) ([6]float64, [MaxChars]byte, int32)
	version   [MaxChars]byte
	libPath   [MaxChars]byte
	fileData  map[int32][]byte
	fileRange [2]float64
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		version:  textBuffer("2.10.03"),
		libPath:  textBuffer("/usr/local/lib/libswe.so"),
		fileData: map[int32][]byte{0: []byte("/data/sepl_18.se1")},
		fileRange: [2]float64{
			2378496.5, 2597641.5,
		},
	}
}

func textBuffer(s string) [MaxChars]byte {
	var b [MaxChars]byte
	copy(b[:MaxChars-1], s)
	return b
}

func (f *fakeSurface) SetEphePath(path string) {
	f.setPathCalls.Add(1)
	f.mu.Lock()
	f.path = path
	f.mu.Unlock()
}

func (f *fakeSurface) SetJPLFile(name string) {
	f.mu.Lock()
	f.jplFile = name
	f.mu.Unlock()
}

func (f *fakeSurface) CalcUT(jd float64, body, flags int32) ([6]float64, [MaxChars]byte, int32) {
	if f.inFlight.Add(1) > 1 {
		f.overlapped.Store(true)
	}
	defer f.inFlight.Add(-1)
	f.calcCalls.Add(1)
	if f.calc != nil {
		return f.calc(jd, body, flags)
	}
	base := float64(body)
	return [6]float64{base + 0.1, base + 0.2, base + 0.3, base + 0.4, base + 0.5, base + 0.6}, [MaxChars]byte{}, flags
}

// JulDay uses the Fliegel-Van Flandern day number so tests do not depend on
// the stub bindings.
func (f *fakeSurface) JulDay(year, month, day int, hour float64, _ int) float64 {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return float64(jdn) - 0.5 + hour/24
}

func (f *fakeSurface) Version() [MaxChars]byte     { return f.version }
func (f *fakeSurface) LibraryPath() [MaxChars]byte { return f.libPath }

func (f *fakeSurface) PlanetName(body int32) [MaxChars]byte {
	return textBuffer(Body(body).String())
}

func (f *fakeSurface) CurrentFileData(ifno int32) ([]byte, float64, float64, int32, bool) {
	p, ok := f.fileData[ifno]
	if !ok {
		return nil, 0, 0, 0, false
	}
	return p, f.fileRange[0], f.fileRange[1], 431, true
}

func (f *fakeSurface) Close() {
	f.closeCalls.Add(1)
}

func (f *fakeSurface) currentPath() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.path
}

// newTestEphemeris returns an Ephemeris over a fake surface with no
// SE_EPHE_PATH in its environment.
func newTestEphemeris(t *testing.T) (*Ephemeris, *fakeSurface) {
	t.Helper()
	fs := newFakeSurface()
	e := newEphemeris(fs)
	e.lookupEnv = func(string) (string, bool) { return "", false }
	e.SetLogger(logging.Discard())
	return e, fs
}

func readyEphemeris(t *testing.T) (*Ephemeris, *fakeSurface) {
	t.Helper()
	e, fs := newTestEphemeris(t)
	e.SetEphePath(t.TempDir())
	return e, fs
}

func withEnv(e *Ephemeris, value string) {
	e.lookupEnv = func(key string) (string, bool) {
		if key == EnvEphePath {
			return value, true
		}
		return "", false
	}
}
