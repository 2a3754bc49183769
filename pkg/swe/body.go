package swe

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Body identifies a celestial body or point by its libswe planet number.
// The constants are ordered; BodyRange walks contiguous spans of them.
type Body int32

const (
	EclipticNutation      Body = -1
	Sun                   Body = 0
	Moon                  Body = 1
	Mercury               Body = 2
	Venus                 Body = 3
	Mars                  Body = 4
	Jupiter               Body = 5
	Saturn                Body = 6
	Uranus                Body = 7
	Neptune               Body = 8
	Pluto                 Body = 9
	MeanNode              Body = 10
	TrueNode              Body = 11
	MeanLunarApogee       Body = 12
	OsculatingLunarApogee Body = 13
	Earth                 Body = 14
	Chiron                Body = 15
	Pholus                Body = 16
	Ceres                 Body = 17
	Pallas                Body = 18
	Juno                  Body = 19
	Vesta                 Body = 20
)

// FirstBody and LastBody bound the declared set.
const (
	FirstBody = EclipticNutation
	LastBody  = Vesta
)

var bodyNames = [...]string{
	"EclipticNutation",
	"Sun",
	"Moon",
	"Mercury",
	"Venus",
	"Mars",
	"Jupiter",
	"Saturn",
	"Uranus",
	"Neptune",
	"Pluto",
	"MeanNode",
	"TrueNode",
	"MeanLunarApogee",
	"OsculatingLunarApogee",
	"Earth",
	"Chiron",
	"Pholus",
	"Ceres",
	"Pallas",
	"Juno",
	"Vesta",
}

// Valid reports whether b is one of the declared constants.
func (b Body) Valid() bool {
	return b >= FirstBody && b <= LastBody
}

func (b Body) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Body(%d)", int32(b))
	}
	return bodyNames[b-FirstBody]
}

// ParseBody resolves a body by its String name, ignoring case.
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if strings.EqualFold(n, name) {
			return FirstBody + Body(i), nil
		}
	}
	return 0, fmt.Errorf("swe: unknown body %q", name)
}

// BodyRange yields every body from from through to, inclusive, in declared
// order, leaving out any listed in skip. BodyRange(Sun, Chiron) includes
// Chiron; an empty range results when from is after to.
func BodyRange(from, to Body, skip ...Body) iter.Seq[Body] {
	return func(yield func(Body) bool) {
		if from > to {
			return
		}
		for b := from; ; b++ {
			if !slices.Contains(skip, b) && !yield(b) {
				return
			}
			if b == to {
				return
			}
		}
	}
}
