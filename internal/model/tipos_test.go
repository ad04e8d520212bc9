package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFecha(t *testing.T) {
	f, err := ParseFecha("2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, 2026, f.Year())
	assert.Equal(t, time.August, f.Month())
	assert.Equal(t, 29, f.Day())

	_, err = ParseFecha("29/08/2026")
	assert.Error(t, err)
}

func TestFechaJSON(t *testing.T) {
	f, err := ParseFecha("2026-08-29")
	require.NoError(t, err)

	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-29"`, string(b))

	var back Fecha
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(f.Time))
}

func TestParseHoraComposesEpochDate(t *testing.T) {
	h, err := ParseHora("13:45:07")
	require.NoError(t, err)
	assert.Equal(t, 1970, h.Year())
	assert.Equal(t, time.January, h.Month())
	assert.Equal(t, 1, h.Day())
	assert.Equal(t, 13, h.Hour())
	assert.Equal(t, 45, h.Minute())
	assert.Equal(t, 7, h.Second())

	// Minutes-only form is accepted too
	h, err = ParseHora("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, h.Hour())
	assert.Equal(t, 0, h.Second())

	_, err = ParseHora("25:99")
	assert.Error(t, err)
}

func TestHoraJSON(t *testing.T) {
	h, err := ParseHora("13:45:07")
	require.NoError(t, err)

	b, err := json.Marshal(h)
	require.NoError(t, err)
	assert.Equal(t, `"13:45:07"`, string(b))

	var back Hora
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(h.Time))
}

func TestHoraScan(t *testing.T) {
	var h Hora
	require.NoError(t, h.Scan(time.Date(2026, 8, 29, 13, 45, 7, 0, time.UTC)))
	// Whatever date the driver hands back, only the clock survives.
	assert.Equal(t, 1970, h.Year())
	assert.Equal(t, 13, h.Hour())

	require.NoError(t, h.Scan("08:15:00"))
	assert.Equal(t, 8, h.Hour())
	assert.Equal(t, 15, h.Minute())

	require.NoError(t, h.Scan("1970-01-01 13:45:07+00:00"))
	assert.Equal(t, 13, h.Hour())
}

func TestFechaScan(t *testing.T) {
	var f Fecha
	require.NoError(t, f.Scan(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, f.Day())

	require.NoError(t, f.Scan("2026-08-29"))
	assert.Equal(t, 2026, f.Year())

	assert.Error(t, f.Scan(42))
}
