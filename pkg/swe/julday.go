package swe

import (
	"time"

	"github.com/libswe/swe-go/internal/bindings"
)

// JulDay converts t to a Julian day-count with libswe's Gregorian-calendar
// formula. t is read as-is and assumed to be UTC; no zone conversion is done.
//
// Only the hour of t is passed to the library. Minutes and seconds are
// dropped, matching the behaviour existing callers depend on; use
// JulDayExact to keep them.
//
// JulDay does not touch the library's global state and may be called in any
// lifecycle phase.
func (e *Ephemeris) JulDay(t time.Time) float64 {
	return e.surface.JulDay(t.Year(), int(t.Month()), t.Day(), float64(t.Hour()), bindings.GregorianCalendar)
}

// JulDayExact is JulDay with minutes, seconds and nanoseconds folded into the
// fractional hour.
func (e *Ephemeris) JulDayExact(t time.Time) float64 {
	hour := float64(t.Hour()) +
		float64(t.Minute())/60 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600
	return e.surface.JulDay(t.Year(), int(t.Month()), t.Day(), hour, bindings.GregorianCalendar)
}
