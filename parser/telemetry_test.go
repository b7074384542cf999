package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTelemetryReportMIC(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:T#MIC,456,789,012,345,678,10101100Comment")
	require.NoError(t, err)

	require.NotNil(t, p.Telemetry)
	assert.Nil(t, p.Telemetry.SequenceCounter)
	assert.Equal(t, []float64{456, 789, 12, 345, 678}, p.Telemetry.Values)
	assert.Equal(t, []int{1, 0, 1, 0, 1, 1, 0, 0}, p.Telemetry.Bits)
	assert.Equal(t, "Comment", p.Comment)
}

func TestParseTelemetryReportSequence(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:T#005,199,011,000,123,001,00110000")
	require.NoError(t, err)

	require.NotNil(t, p.Telemetry.SequenceCounter)
	assert.Equal(t, 5, *p.Telemetry.SequenceCounter)
	assert.Equal(t, []float64{199, 11, 0, 123, 1}, p.Telemetry.Values)
	assert.Equal(t, []int{0, 0, 1, 1, 0, 0, 0, 0}, p.Telemetry.Bits)
	assert.Empty(t, p.Comment)
}

func TestParseTelemetryReportSkipsEmptyValues(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:T#005,199,,000,,001,00110000")
	require.NoError(t, err)
	assert.Equal(t, []float64{199, 0, 1}, p.Telemetry.Values)
}

func TestParseTelemetryReportShortBits(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL:T#MIC,1.5,-3,1010")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -3}, p.Telemetry.Values)
	assert.Equal(t, []int{1, 0, 1, 0}, p.Telemetry.Bits)
}

func TestParseTelemetryReportErrors(t *testing.T) {
	for _, raw := range []string{
		"FROMCALL>TOCALL:T#",
		"FROMCALL>TOCALL:Tnope",
		"FROMCALL>TOCALL:T#abc,123,0000",
		"FROMCALL>TOCALL:T#005,xyz,0000",
		"FROMCALL>TOCALL:T#005,123,xyz",
	} {
		_, err := Parse(raw)
		require.Error(t, err, raw)
	}
}

func TestParseTelemetryDefinitionEQNS(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL::FROMCALL :EQNS.0,0.075,0,0,10,0,0,10,0,0,1,0,0,0,0")
	require.NoError(t, err)

	assert.Nil(t, p.Message)
	require.NotNil(t, p.Telemetry)
	assert.Equal(t, "FROMCALL", p.Telemetry.To)
	assert.Equal(t, [][]float64{
		{0, 0.075, 0},
		{0, 10, 0},
		{0, 10, 0},
		{0, 1, 0},
		{0, 0, 0},
	}, p.Telemetry.Eqns)
}

func TestParseTelemetryDefinitionEQNSTruncates(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL::FROMCALL :EQNS.0,1,2,3,4,5,6,7")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1, 2}, {3, 4, 5}}, p.Telemetry.Eqns)
}

func TestParseTelemetryDefinitionPARMUNIT(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL::FROMCALL :PARM.Battery,Btemp,ATemp,Pres,Alt")
	require.NoError(t, err)
	assert.Equal(t, []string{"Battery", "Btemp", "ATemp", "Pres", "Alt"}, p.Telemetry.Parm)

	p, err = Parse("FROMCALL>TOCALL::FROMCALL :UNIT.v/100,deg.F,deg.F,Mbar,Kft")
	require.NoError(t, err)
	assert.Equal(t, []string{"v/100", "deg.F", "deg.F", "Mbar", "Kft"}, p.Telemetry.Unit)
}

func TestParseTelemetryDefinitionBITS(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL::FROMCALL :BITS.10110000,N0CALL's Big Balloon")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 1, 0, 0, 0, 0}, p.Telemetry.Bits)
	assert.Equal(t, "N0CALL's Big Balloon", p.Telemetry.ProjectTitle)
}

func TestTelemetryDefinitionForOtherStationIsMessage(t *testing.T) {
	// Definitions only apply when a station addresses itself
	p, err := Parse("FROMCALL>TOCALL::OTHERCALL:EQNS.0,1,2")
	require.NoError(t, err)
	require.NotNil(t, p.Message)
	assert.Equal(t, "OTHERCALL", p.Message.Addressee)
	assert.Equal(t, "EQNS.0,1,2", p.Message.Message)
	assert.Nil(t, p.Telemetry)
}
