package swe

import (
	"fmt"
	"math/bits"
	"strings"
)

// Flag is one libswe calculation option (SEFLG_*). Flags combine by OR.
type Flag int32

const (
	JPLEphemeris      Flag = 1 << 0  // SEFLG_JPLEPH
	SwissEphemeris    Flag = 1 << 1  // SEFLG_SWIEPH
	MoshierEphemeris  Flag = 1 << 2  // SEFLG_MOSEPH
	Heliocentric      Flag = 1 << 3  // SEFLG_HELCTR
	TruePosition      Flag = 1 << 4  // SEFLG_TRUEPOS
	NoPrecession      Flag = 1 << 5  // SEFLG_J2000
	NoNutation        Flag = 1 << 6  // SEFLG_NONUT
	Speed3            Flag = 1 << 7  // SEFLG_SPEED3
	Speed             Flag = 1 << 8  // SEFLG_SPEED
	NoGravDeflection  Flag = 1 << 9  // SEFLG_NOGDEFL
	NoAberration      Flag = 1 << 10 // SEFLG_NOABERR
	Equatorial        Flag = 1 << 11 // SEFLG_EQUATORIAL
	Cartesian         Flag = 1 << 12 // SEFLG_XYZ
	Radians           Flag = 1 << 13 // SEFLG_RADIANS
	Barycentric       Flag = 1 << 14 // SEFLG_BARYCTR
	Topocentric       Flag = 1 << 15 // SEFLG_TOPOCTR
	Sidereal          Flag = 1 << 16 // SEFLG_SIDEREAL
	ICRS              Flag = 1 << 17 // SEFLG_ICRS
	JPLHorizons       Flag = 1 << 18 // SEFLG_JPLHOR
	JPLHorizonsApprox Flag = 1 << 19 // SEFLG_JPLHOR_APPROX
	CenterOfBody      Flag = 1 << 20 // SEFLG_CENTER_BODY
)

// Astrometric is SEFLG_ASTROMETRIC. It is a preset of two single-bit flags,
// not a flag of its own.
const Astrometric = NoGravDeflection | NoAberration

type namedFlag struct {
	flag Flag
	name string
}

// flagSet lists every single-bit flag. Additions must keep each value a
// distinct power of two; init refuses to start otherwise.
var flagSet = []namedFlag{
	{JPLEphemeris, "JPLEphemeris"},
	{SwissEphemeris, "SwissEphemeris"},
	{MoshierEphemeris, "MoshierEphemeris"},
	{Heliocentric, "Heliocentric"},
	{TruePosition, "TruePosition"},
	{NoPrecession, "NoPrecession"},
	{NoNutation, "NoNutation"},
	{Speed3, "Speed3"},
	{Speed, "Speed"},
	{NoGravDeflection, "NoGravDeflection"},
	{NoAberration, "NoAberration"},
	{Equatorial, "Equatorial"},
	{Cartesian, "Cartesian"},
	{Radians, "Radians"},
	{Barycentric, "Barycentric"},
	{Topocentric, "Topocentric"},
	{Sidereal, "Sidereal"},
	{ICRS, "ICRS"},
	{JPLHorizons, "JPLHorizons"},
	{JPLHorizonsApprox, "JPLHorizonsApprox"},
	{CenterOfBody, "CenterOfBody"},
}

func init() {
	if err := checkFlagBits(flagSet); err != nil {
		panic(err)
	}
}

func checkFlagBits(set []namedFlag) error {
	var seen Flag
	for _, f := range set {
		if f.flag <= 0 || bits.OnesCount32(uint32(f.flag)) != 1 {
			return fmt.Errorf("swe: flag %s (%#x) is not a single bit", f.name, uint32(f.flag))
		}
		if seen&f.flag != 0 {
			return fmt.Errorf("swe: flag %s (%#x) overlaps another flag", f.name, uint32(f.flag))
		}
		seen |= f.flag
	}
	return nil
}

// Flags returns every single-bit flag in ascending bit order.
func Flags() []Flag {
	out := make([]Flag, len(flagSet))
	for i, f := range flagSet {
		out[i] = f.flag
	}
	return out
}

// Compose ORs flags into the bitmask libswe expects. Order and duplicates do
// not matter. Contradictory combinations are left for libswe to reject.
func Compose(flags ...Flag) Flag {
	var mask Flag
	for _, f := range flags {
		mask |= f
	}
	return mask
}

// Has reports whether every bit of other is set in f.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}

func (f Flag) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	rest := f
	for _, nf := range flagSet {
		if f&nf.flag != 0 {
			parts = append(parts, nf.name)
			rest &^= nf.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseFlag resolves a single flag by its String name, ignoring case.
// "Astrometric" resolves to the preset.
func ParseFlag(name string) (Flag, error) {
	if strings.EqualFold(name, "Astrometric") {
		return Astrometric, nil
	}
	for _, nf := range flagSet {
		if strings.EqualFold(nf.name, name) {
			return nf.flag, nil
		}
	}
	return 0, fmt.Errorf("swe: unknown flag %q", name)
}
