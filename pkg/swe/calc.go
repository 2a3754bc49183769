package swe

import (
	"context"
	"strings"
	"time"

	"github.com/libswe/swe-go/pkg/swe/logging"
)

// Position is a successful body position. Angles are in degrees and
// distances in AU unless Radians or Cartesian were requested; the speeds are
// per day and only filled when Speed (or Speed3) was requested.
type Position struct {
	Longitude      float64 `json:"longitude" yaml:"longitude"`
	Latitude       float64 `json:"latitude" yaml:"latitude"`
	Distance       float64 `json:"distance" yaml:"distance"`
	LongitudeSpeed float64 `json:"longitude_speed" yaml:"longitude_speed"`
	LatitudeSpeed  float64 `json:"latitude_speed" yaml:"latitude_speed"`
	DistanceSpeed  float64 `json:"distance_speed" yaml:"distance_speed"`

	// Flags is the non-negative status libswe returned: the flags it
	// actually applied, which may differ from the requested ones (for
	// example when it fell back to the Moshier ephemeris).
	Flags Flag `json:"flags" yaml:"flags"`
}

type calcRaw struct {
	xx   [6]float64
	serr [MaxChars]byte
	rc   int32
}

// CalcUT computes the position of body at the Universal Time day-count jdUT.
//
// A negative status from the library is returned as a *CalcError carrying
// its diagnostic; no Position is returned with it. CalcUT panics when the
// Ephemeris is not Ready.
func (e *Ephemeris) CalcUT(jdUT float64, body Body, flags ...Flag) (Position, error) {
	iflag := Compose(flags...)

	start := time.Now()
	raw := locked(e, "CalcUT", func(s surface) calcRaw {
		xx, serr, rc := s.CalcUT(jdUT, int32(body), int32(iflag))
		return calcRaw{xx: xx, serr: serr, rc: rc}
	})
	elapsed := time.Since(start)

	logger, collector := e.observers()
	if collector != nil {
		collector.ObserveCalc(body.String(), raw.rc >= 0, elapsed)
	}

	if raw.rc < 0 {
		cerr := &CalcError{Body: body, Flags: iflag, Code: raw.rc}
		msg, err := decodeCString(raw.serr[:])
		if err != nil {
			cerr.Err = err
			msg = strings.ToValidUTF8(cStringBytes(raw.serr[:]), "\uFFFD")
		}
		if msg == "" {
			msg = "calculation failed without a diagnostic"
		}
		cerr.Message = msg
		logger.Debug(context.Background(), "calculation failed",
			logging.KeyBody, body.String(), logging.KeyFlags, iflag.String(), logging.KeyCode, raw.rc, logging.KeyReason, msg)
		return Position{}, cerr
	}

	return Position{
		Longitude:      raw.xx[0],
		Latitude:       raw.xx[1],
		Distance:       raw.xx[2],
		LongitudeSpeed: raw.xx[3],
		LatitudeSpeed:  raw.xx[4],
		DistanceSpeed:  raw.xx[5],
		Flags:          Flag(raw.rc),
	}, nil
}
