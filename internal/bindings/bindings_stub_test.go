//go:build !cgo || !swe

package bindings

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubNotAvailable(t *testing.T) {
	assert.False(t, Available())
}

func TestStubCalcReportsNotBuilt(t *testing.T) {
	xx, serr, rc := Native{}.CalcUT(2448543.5, 0, 256)
	require.Less(t, rc, int32(0))
	assert.Equal(t, [6]float64{}, xx)

	n := bytes.IndexByte(serr[:], 0)
	require.Positive(t, n, "diagnostic must be NUL-terminated")
	assert.Equal(t, ErrNotBuilt.Error(), string(serr[:n]))
}

func TestStubJulDayGolden(t *testing.T) {
	// 1991-10-13 20:00 UTC
	got := Native{}.JulDay(1991, 10, 13, 20.0, GregorianCalendar)
	assert.InDelta(t, 2448543.3333333335, got, 1e-9)
}

func TestStubJulDayFractionalHour(t *testing.T) {
	got := Native{}.JulDay(2000, 1, 1, 12.5, GregorianCalendar)
	assert.InDelta(t, 2451545.0+0.5/24, got, 1e-9)
}

func TestStubCurrentFileDataEmpty(t *testing.T) {
	path, _, _, _, ok := Native{}.CurrentFileData(0)
	assert.False(t, ok)
	assert.Nil(t, path)
}
