package swe

import (
	"fmt"
)

// FileData describes an ephemeris file the library currently has open.
type FileData struct {
	Path      string  `json:"path" yaml:"path"`
	StartDate float64 `json:"start_date" yaml:"start_date"`
	EndDate   float64 `json:"end_date" yaml:"end_date"`
	// Ephemeris is the JPL development ephemeris number (e.g. 431).
	Ephemeris int32 `json:"ephemeris" yaml:"ephemeris"`
}

// Covers reports whether jd lies inside the file's validity range.
func (f FileData) Covers(jd float64) bool {
	return jd >= f.StartDate && jd <= f.EndDate
}

// Version returns the libswe version string.
func (e *Ephemeris) Version() (string, error) {
	buf := locked(e, "Version", func(s surface) [MaxChars]byte { return s.Version() })
	v, err := decodeCString(buf[:])
	if err != nil {
		return "", fmt.Errorf("version: %w", err)
	}
	return v, nil
}

// LibraryPath returns the path of the loaded libswe shared object.
func (e *Ephemeris) LibraryPath() (string, error) {
	buf := locked(e, "LibraryPath", func(s surface) [MaxChars]byte { return s.LibraryPath() })
	p, err := decodeCString(buf[:])
	if err != nil {
		return "", fmt.Errorf("library path: %w", err)
	}
	return p, nil
}

// PlanetName returns libswe's display name for body.
func (e *Ephemeris) PlanetName(body Body) (string, error) {
	buf := locked(e, "PlanetName", func(s surface) [MaxChars]byte { return s.PlanetName(int32(body)) })
	name, err := decodeCString(buf[:])
	if err != nil {
		return "", fmt.Errorf("planet name %s: %w", body, err)
	}
	return name, nil
}

type fileRaw struct {
	path       []byte
	start, end float64
	denum      int32
	ok         bool
}

// CurrentFileData describes the file loaded in slot ifno: 0 planets, 1 moon,
// 2 main asteroids, 3 other asteroid or planetary moon, 4 fixed stars.
// A slot with nothing loaded yields ErrNoFileLoaded. Slots are only filled
// once a calculation has needed them.
func (e *Ephemeris) CurrentFileData(ifno int) (FileData, error) {
	raw := locked(e, "CurrentFileData", func(s surface) fileRaw {
		path, start, end, denum, ok := s.CurrentFileData(int32(ifno))
		return fileRaw{path: path, start: start, end: end, denum: denum, ok: ok}
	})
	if !raw.ok {
		return FileData{}, fmt.Errorf("file slot %d: %w", ifno, ErrNoFileLoaded)
	}
	path, err := decodeCString(raw.path)
	if err != nil {
		return FileData{}, fmt.Errorf("file slot %d path: %w", ifno, err)
	}
	return FileData{
		Path:      path,
		StartDate: raw.start,
		EndDate:   raw.end,
		Ephemeris: raw.denum,
	}, nil
}
