package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmbiguousPositions(t *testing.T) {
	cases := []struct {
		raw  string
		prec Precision
		lat  float64
	}{
		{"FROMCALL>TOCALL:!4903.50N/07201.75W-", PrecisionHundredthMinute, 49.058333},
		{"FROMCALL>TOCALL:!4903.5 N/07201.7 W-", PrecisionTenthMinute, 49.058333},
		{"FROMCALL>TOCALL:!4903.  N/07201.  W-", PrecisionMinute, 49.05},
		{"FROMCALL>TOCALL:!490 .  N/0720 .  W-", PrecisionTenthDegree, 49.0},
		{"FROMCALL>TOCALL:!49  .  N/072  .  W-", PrecisionDegree, 49.0},
	}

	for _, c := range cases {
		p, err := Parse(c.raw)
		require.NoError(t, err, c.raw)
		assert.Equal(t, c.prec, p.Position.LatPrecision, c.raw)
		assert.Equal(t, c.prec, p.Position.LonPrecision, c.raw)
		assert.InDelta(t, c.lat, p.Position.Latitude, 0.0001, c.raw)
	}
}

func TestParsePositionErrors(t *testing.T) {
	for _, raw := range []string{
		// Bad direction bytes
		"FROMCALL>TOCALL:!4903.50X/07201.75W-",
		"FROMCALL>TOCALL:!4903.50N/07201.75X-",
		// Out of range
		"FROMCALL>TOCALL:!9903.50N/07201.75W-",
		// Too short
		"FROMCALL>TOCALL:!4903.50N",
		// Non-digit timestamp
		"FROMCALL>TOCALL:/09z345z4903.50N/07201.75W-",
	} {
		_, err := Parse(raw)
		require.Error(t, err, raw)
	}
}

// The compressed example of the protocol reference: 49.5°N 72.75°W with a
// 10004 ft altitude in the cs bytes
func TestParseCompressedAltitude(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:=/5L!!<*e7OS]S")
	require.NoError(t, err)

	require.NotNil(t, p.Position)
	assert.InDelta(t, 49.5, p.Position.Latitude, 0.001)
	assert.InDelta(t, -72.75, p.Position.Longitude, 0.001)

	require.NotNil(t, p.Position.Altitude)
	assert.InDelta(t, 3049.5, *p.Position.Altitude, 1.5)

	assert.Equal(t, "/O", p.Symbol)
}

func TestParseCompressedCourseSpeed(t *testing.T) {
	// cs "7P": course (55-33)*4 = 88, speed 1.08^(80-33)-1 knots
	p, err := Parse("FROMCALL>TOCALL:=/5L!!<*e7O7P!")
	require.NoError(t, err)

	require.NotNil(t, p.Course)
	assert.InDelta(t, 88, p.Course.Direction, 0.001)
	assert.InDelta(t, 36.2*knotsToMetersPerSec, p.Course.Speed, 0.1)
}

func TestParseCompressedRadioRange(t *testing.T) {
	// c '{' selects a pre-computed radio range of 2*1.08^(s-33) miles
	p, err := Parse("FROMCALL>TOCALL:=/5L!!<*e7O{?!")
	require.NoError(t, err)

	require.NotNil(t, p.Position.Range)
	assert.InDelta(t, 20.13*metersPerMile, *p.Position.Range, 100)
}

func TestParseObject(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:;LEADER   *092345z4903.50N/07201.75W>088/036")
	require.NoError(t, err)

	require.NotNil(t, p.Object)
	assert.Equal(t, "LEADER", p.Object.Name)
	assert.True(t, p.Object.Alive)

	require.NotNil(t, p.Timestamp)
	assert.Equal(t, 9, p.Timestamp.Day)

	require.NotNil(t, p.Course)
	assert.InDelta(t, 88, p.Course.Direction, 0.001)
}

func TestParseKilledObject(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:;LEADER   _092345z4903.50N/07201.75W>")
	require.NoError(t, err)
	assert.False(t, p.Object.Alive)
}

func TestParseObjectBadState(t *testing.T) {
	_, err := Parse("FROMCALL>TOCALL:;LEADER   x092345z4903.50N/07201.75W>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "object state")
}

func TestParseItem(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:)AID!4903.50N/07201.75W!")
	require.NoError(t, err)

	require.NotNil(t, p.Item)
	assert.Equal(t, "AID", p.Item.Name)
	assert.True(t, p.Item.Alive)
	assert.InDelta(t, 49.058333, p.Position.Latitude, 0.0001)
}

func TestParseKilledItem(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:)G/WB4APR_4903.50N/07201.75W-")
	require.NoError(t, err)
	assert.Equal(t, "G/WB4APR", p.Item.Name)
	assert.False(t, p.Item.Alive)
}

func TestParseItemBadName(t *testing.T) {
	_, err := Parse("FROMCALL>TOCALL:)A!4903.50N/07201.75W!")
	require.Error(t, err)
}

func TestParseStatusReport(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:>Net Control Center")
	require.NoError(t, err)
	assert.Equal(t, "Net Control Center", p.Status)

	p, err = Parse("FROMCALL>TOCALL:>102345zOperating")
	require.NoError(t, err)
	require.NotNil(t, p.Timestamp)
	assert.Equal(t, 10, p.Timestamp.Day)
	assert.Equal(t, 23, p.Timestamp.Hour)
	assert.Equal(t, "Operating", p.Status)
}

func TestParseStatusMaidenhead(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:>IO91SX/- my house")
	require.NoError(t, err)
	require.NotNil(t, p.Position)
	assert.Equal(t, "IO91SX", p.Position.Maidenhead)
	assert.Equal(t, "/-", p.Symbol)
	assert.Equal(t, "my house", p.Status)

	p, err = Parse("FROMCALL>TOCALL:>IO91/-")
	require.NoError(t, err)
	assert.Equal(t, "IO91", p.Position.Maidenhead)
	assert.Equal(t, "/-", p.Symbol)
	assert.Empty(t, p.Status)
}
