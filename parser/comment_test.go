package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommentDAOStripped(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:!4903.50N/07201.75W-hello !W24! world")
	require.NoError(t, err)
	assert.Equal(t, "hello  world", p.Comment)
}

func TestParseCommentTelemetryStripped(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:!4903.50N/07201.75W-before|!!!\"!#|after")
	require.NoError(t, err)

	require.NotNil(t, p.Telemetry)
	require.NotNil(t, p.Telemetry.SequenceCounter)
	assert.Equal(t, 0, *p.Telemetry.SequenceCounter)
	assert.Equal(t, []float64{1, 2}, p.Telemetry.Values)
	assert.Equal(t, "beforeafter", p.Comment)
}

func TestParseCommentOddTelemetryBlockKept(t *testing.T) {
	// Blocks with an odd byte count are not telemetry
	p, err := Parse("FROMCALL>TOCALL:!4903.50N/07201.75W-a|abcde|b")
	require.NoError(t, err)
	assert.Nil(t, p.Telemetry)
	assert.Equal(t, "a|abcde|b", p.Comment)
}

func TestParseEmptyCommentIsAbsent(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:!4903.50N/07201.75W-   ")
	require.NoError(t, err)
	assert.Empty(t, p.Comment)
}

func TestParseNegativeCommentAltitude(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:!4903.50N/07201.75W-below /A=-00123 sea")
	require.NoError(t, err)
	require.NotNil(t, p.Position.Altitude)
	assert.InDelta(t, -123*metersPerFoot, *p.Position.Altitude, 0.0001)
	assert.Equal(t, "below /A=-00123 sea", p.Comment)
}
