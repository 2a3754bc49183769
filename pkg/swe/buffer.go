package swe

import (
	"bytes"
	"unicode/utf8"
)

// cStringBytes returns the text before the first NUL in buf, or all of buf
// when there is none, without validating it.
func cStringBytes(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}

// decodeCString is cStringBytes for text that must be valid UTF-8. Anything
// else yields ErrInvalidText.
func decodeCString(buf []byte) (string, error) {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidText
	}
	return string(buf), nil
}
