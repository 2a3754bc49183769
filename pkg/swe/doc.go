// Package swe is a safe Go API over the Swiss Ephemeris C library (libswe).
//
// The native library keeps process-wide state: the data path, open
// ephemeris files and cached positions. This package owns that state through
// a single Ephemeris value, returned by Default, which enforces the order
// the library requires:
//
//	eph := swe.Default()
//	eph.SetEphePath("/usr/share/sweph") // once, before any query
//	defer eph.Close()                   // once, at shutdown
//
//	jd := eph.JulDay(time.Date(1991, 10, 13, 20, 0, 0, 0, time.UTC))
//	for body := range swe.BodyRange(swe.Sun, swe.Chiron, swe.Earth) {
//	    pos, err := eph.CalcUT(jd, body, swe.Speed)
//	    ...
//	}
//
// # Errors
//
// Calling a query before SetEphePath or after Close, or configuring a data
// path that does not exist, is a programming error and panics. Failures the
// library reports at runtime (a missing data file, an unsupported flag
// combination) come back as *CalcError values carrying the library's own
// diagnostic text.
//
// # Concurrency
//
// Every method is safe for concurrent use. SetEphePath and Close run their
// native side effect exactly once. All other library calls are serialized
// behind one lock, because libswe is not re-entrant.
//
// # Building
//
// The native bindings are linked only with cgo enabled and the `swe` build
// tag. Without them the package still compiles; NativeAvailable reports false
// and calculations fail with ErrNotBuilt's text.
package swe
