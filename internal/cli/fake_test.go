package cli

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/libswe/swe-go/pkg/swe"
	"github.com/libswe/swe-go/pkg/swe/logging"
	"github.com/libswe/swe-go/pkg/swe/metrics"
)

// fakeEphemeris stands in for swe.Default() so each test gets a fresh
// lifecycle.
type fakeEphemeris struct {
	mu        sync.Mutex
	cfg       swe.Config
	applied   int
	closed    int
	collector *metrics.Collector

	// failing maps bodies to the diagnostic their calculation fails with.
	failing map[swe.Body]string
}

func (f *fakeEphemeris) SetLogger(logging.Logger) {}

func (f *fakeEphemeris) SetCollector(c *metrics.Collector) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.collector = c
}

func (f *fakeEphemeris) Apply(cfg swe.Config) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applied++
	f.cfg = cfg
	if f.collector != nil {
		f.collector.SetState(int(swe.Ready))
	}
}

func (f *fakeEphemeris) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
	if f.collector != nil {
		f.collector.SetState(int(swe.Closed))
	}
}

func (f *fakeEphemeris) closeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func unixJD(t time.Time) float64 {
	return float64(t.Unix())/86400 + 2440587.5
}

func (f *fakeEphemeris) JulDay(t time.Time) float64 {
	return unixJD(t.Truncate(time.Hour))
}

func (f *fakeEphemeris) JulDayExact(t time.Time) float64 {
	return unixJD(t)
}

func (f *fakeEphemeris) CalcUT(_ float64, body swe.Body, flags ...swe.Flag) (swe.Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg, fail := f.failing[body]
	if f.collector != nil {
		f.collector.ObserveCalc(body.String(), !fail, time.Millisecond)
	}
	if fail {
		return swe.Position{}, &swe.CalcError{Body: body, Flags: swe.Compose(flags...), Code: -1, Message: msg}
	}
	return swe.Position{Longitude: float64(body) * 10, Distance: 1, Flags: swe.Compose(flags...)}, nil
}

func (f *fakeEphemeris) PlanetName(body swe.Body) (string, error) {
	return body.String(), nil
}

func (f *fakeEphemeris) Version() (string, error)     { return "2.10.03", nil }
func (f *fakeEphemeris) LibraryPath() (string, error) { return "/usr/local/lib/libswe.so", nil }

func (f *fakeEphemeris) CurrentFileData(ifno int) (swe.FileData, error) {
	if ifno != 0 {
		return swe.FileData{}, fmt.Errorf("file slot %d: %w", ifno, swe.ErrNoFileLoaded)
	}
	return swe.FileData{Path: "/usr/share/sweph/sepl_18.se1", StartDate: 2378496.5, EndDate: 2597641.5, Ephemeris: 431}, nil
}

// run executes args through a fresh app over eph.
func run(eph ephemeris, args ...string) (stdout, stderr string, err error) {
	a := newApp(eph)
	root := a.rootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = a.execute(root)
	return out.String(), errOut.String(), err
}
