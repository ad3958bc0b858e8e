package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDisplayDate(t *testing.T) {
	got := ParseDisplayDate("15.03.2024")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *got)

	assert.Nil(t, ParseDisplayDate(""))
	assert.Nil(t, ParseDisplayDate("2024-03-15"))
	assert.Nil(t, ParseDisplayDate("1.3.2024"))
	assert.Nil(t, ParseDisplayDate("garbage"))
	// Impossible calendar dates are rejected, not clamped.
	assert.Nil(t, ParseDisplayDate("32.01.2024"))
	assert.Nil(t, ParseDisplayDate("29.02.2023"))
}

func TestParseDisplayDate_TrimsWhitespace(t *testing.T) {
	got := ParseDisplayDate("  01.01.2024  ")
	require.NotNil(t, got)
	assert.Equal(t, 2024, got.Year())
}

func TestNormalizeDisplayDate(t *testing.T) {
	assert.Equal(t, "15.03.2024", NormalizeDisplayDate("15.03.2024"))
	assert.Equal(t, "15.03.2024", NormalizeDisplayDate("2024-03-15"))
	assert.Equal(t, "15.03.2024", NormalizeDisplayDate("2024-03-15T00:00:00"))
	assert.Equal(t, "15.03.2024", NormalizeDisplayDate("15/03/2024"))

	today := time.Now().Format(DisplayLayout)
	assert.Equal(t, today, NormalizeDisplayDate(""))
	assert.Equal(t, today, NormalizeDisplayDate("not a date"))
}

func TestISODate(t *testing.T) {
	day := time.Date(2024, 7, 9, 15, 30, 0, 0, time.Local)
	assert.Equal(t, "2024-07-09", ISODate(day))
}

func TestSameDate(t *testing.T) {
	morning := time.Date(2024, 7, 9, 1, 0, 0, 0, time.UTC)
	night := time.Date(2024, 7, 9, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(morning, night))
	assert.False(t, SameDate(night, nextDay))
}
