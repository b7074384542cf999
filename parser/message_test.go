package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMessage(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL::WU2Z     :Testing")
	require.NoError(t, err)

	require.NotNil(t, p.Message)
	assert.Equal(t, "WU2Z", p.Message.Addressee)
	assert.Equal(t, "Testing", p.Message.Message)
	assert.Empty(t, p.Message.MessageNo)
}

func TestParseMessageWithNumber(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL::WU2Z     :Testing{003")
	require.NoError(t, err)
	assert.Equal(t, "Testing", p.Message.Message)
	assert.Equal(t, "003", p.Message.MessageNo)
}

func TestParseMessageAlphanumericNumber(t *testing.T) {
	// Reply-ack style numbers from real feeds are opaque
	p, err := Parse("FROMCALL>TOCALL::WU2Z     :Testing{AB")
	require.NoError(t, err)
	assert.Equal(t, "Testing", p.Message.Message)
	assert.Equal(t, "AB", p.Message.MessageNo)
}

func TestParseMessageAck(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL::KAT      :ack003")
	require.NoError(t, err)
	assert.Equal(t, "KAT", p.Message.Addressee)
	assert.Equal(t, "ack", p.Message.Message)
	assert.Equal(t, "003", p.Message.MessageNo)
}

func TestParseMessageRej(t *testing.T) {
	p, err := Parse("FROMCALL>TOCALL::KAT      :rej003")
	require.NoError(t, err)
	assert.Equal(t, "rej", p.Message.Message)
	assert.Equal(t, "003", p.Message.MessageNo)
}

func TestParseMessageBadFormat(t *testing.T) {
	_, err := Parse("FROMCALL>TOCALL::SHORT:text")
	require.Error(t, err)
}
