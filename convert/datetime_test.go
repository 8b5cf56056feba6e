package convert_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hl7kit/gohl7/builder"
	"github.com/hl7kit/gohl7/convert"
	"github.com/hl7kit/gohl7/element"
)

func TestParseDTMFullPrecision(t *testing.T) {
	got, err := convert.ParseDTM("20260115103000")
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 15, got.Day())
	assert.Equal(t, 10, got.Hour())
}

func TestParseDTMDayOnly(t *testing.T) {
	got, err := convert.ParseDTM("19800101")
	require.NoError(t, err)
	assert.Equal(t, 1980, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestParseDTMRejectsEmpty(t *testing.T) {
	_, err := convert.ParseDTM("")
	assert.Error(t, err)
}

func TestParseDTMFallsBackToDateparse(t *testing.T) {
	got, err := convert.ParseDTM("2026-01-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
}

func TestFormatDTMPrecisions(t *testing.T) {
	ts := time.Date(2026, time.March, 4, 9, 5, 2, 0, time.UTC)
	assert.Equal(t, "2026", convert.FormatDTM(ts, "year"))
	assert.Equal(t, "202603", convert.FormatDTM(ts, "month"))
	assert.Equal(t, "20260304", convert.FormatDTM(ts, "day"))
	assert.Equal(t, "2026030409", convert.FormatDTM(ts, "hour"))
	assert.Equal(t, "202603040905", convert.FormatDTM(ts, "minute"))
	assert.Equal(t, "20260304090502", convert.FormatDTM(ts, "second"))
}

func TestSetTimeThenGetTimeRoundTrips(t *testing.T) {
	m := builder.NewMessage()
	seg, err := m.Root().Child(1)
	require.NoError(t, err)
	f, err := seg.Child(7)
	require.NoError(t, err)

	ts := time.Date(2026, time.July, 30, 14, 0, 0, 0, time.UTC)
	require.NoError(t, convert.SetTime(f, ts, "second"))

	got, err := convert.GetTime(f)
	require.NoError(t, err)
	assert.True(t, ts.Equal(got))
}

func TestGetSetInt(t *testing.T) {
	m := builder.NewMessage()
	seg, err := m.Root().Child(1)
	require.NoError(t, err)
	f, err := seg.Child(7)
	require.NoError(t, err)

	require.NoError(t, convert.SetInt(f, 42))
	got, err := convert.GetInt(f)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
}

func TestGetIntRejectsEmpty(t *testing.T) {
	m := builder.NewMessage()
	seg, err := m.Root().Child(1)
	require.NoError(t, err)
	f, err := seg.Child(7)
	require.NoError(t, err)

	_, err = convert.GetInt(f)
	assert.Error(t, err)
}

func TestGetSetFloat(t *testing.T) {
	m := builder.NewMessage()
	seg, err := m.Root().Child(1)
	require.NoError(t, err)
	f, err := seg.Child(7)
	require.NoError(t, err)

	require.NoError(t, convert.SetFloat(f, 98.6))
	got, err := convert.GetFloat(f)
	require.NoError(t, err)
	assert.InDelta(t, 98.6, got, 0.0001)
}

func TestGetSetBool(t *testing.T) {
	m := builder.NewMessage()
	seg, err := m.Root().Child(1)
	require.NoError(t, err)
	f, err := seg.Child(7)
	require.NoError(t, err)

	require.NoError(t, convert.SetBool(f, true))
	got, err := convert.GetBool(f)
	require.NoError(t, err)
	assert.True(t, got)

	require.NoError(t, f.SetValue(element.NewValue("n")))
	got, err = convert.GetBool(f)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestGetBoolRejectsUnrecognized(t *testing.T) {
	m := builder.NewMessage()
	seg, err := m.Root().Child(1)
	require.NoError(t, err)
	f, err := seg.Child(7)
	require.NoError(t, err)
	require.NoError(t, f.SetValue(element.NewValue("MAYBE")))

	_, err = convert.GetBool(f)
	assert.Error(t, err)
}
