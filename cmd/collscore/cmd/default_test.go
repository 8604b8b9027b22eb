package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openucx/collscore/score"
)

func TestParseCollFlagEmptyMeansAll(t *testing.T) {
	mask, err := parseCollFlag("")
	require.NoError(t, err)
	assert.Equal(t, score.ColTypeAll, mask)
}

func TestParseCollFlagUnionsNamedBits(t *testing.T) {
	mask, err := parseCollFlag("allreduce,bcast")
	require.NoError(t, err)
	assert.Equal(t, score.ColAllreduce|score.ColBcast, mask)
}

func TestParseCollFlagRejectsUnknownName(t *testing.T) {
	_, err := parseCollFlag("not-a-collective")
	assert.Error(t, err)
}

func TestParseMemFlagEmptyMeansNil(t *testing.T) {
	types, err := parseMemFlag("")
	require.NoError(t, err)
	assert.Nil(t, types)
}

func TestParseMemFlagCollectsNamedTypes(t *testing.T) {
	types, err := parseMemFlag("host,cuda")
	require.NoError(t, err)
	assert.Equal(t, []score.MemType{score.MemHost, score.MemCuda}, types)
}

func TestParseMemFlagRejectsUnknownName(t *testing.T) {
	_, err := parseMemFlag("not-a-mem-kind")
	assert.Error(t, err)
}
