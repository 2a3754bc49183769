package swe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCString(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		want    string
		wantErr error
	}{
		{"empty buffer", []byte{}, "", nil},
		{"all zero", make([]byte, MaxChars), "", nil},
		{"stops at first NUL", []byte("2.10\x00garbage\x00"), "2.10", nil},
		{"no terminator", []byte("sepl_18.se1"), "sepl_18.se1", nil},
		{"utf8", []byte("Cérès\x00"), "Cérès", nil},
		{"invalid after NUL ignored", []byte("ok\x00\xff\xfe"), "ok", nil},
		{"invalid before NUL", []byte("x\xff\x00"), "", ErrInvalidText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeCString(tt.buf)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeCStringFullBuffer(t *testing.T) {
	buf := textBuffer("Swiss Ephemeris")
	got, err := decodeCString(buf[:])
	require.NoError(t, err)
	assert.Equal(t, "Swiss Ephemeris", got)
}

func TestCStringBytes(t *testing.T) {
	assert.Equal(t, "ab\xff", cStringBytes([]byte("ab\xff\x00cd")))
}
