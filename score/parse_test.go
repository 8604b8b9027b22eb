package score

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocFromStrSingleRange(t *testing.T) {
	m, err := AllocFromStr("allreduce:host:1K-1M:100", 1)
	require.NoError(t, err)

	cell, err := m.Cell(ColAllreduce, MemHost)
	require.NoError(t, err)
	require.Equal(t, []Range{{Start: 1 << 10, End: 1 << 20, Score: 100}}, cell)

	cell, err = m.Cell(ColBarrier, MemHost)
	require.NoError(t, err)
	require.Empty(t, cell)
}

func TestAllocFromStrDefaultsWhenFieldsOmitted(t *testing.T) {
	m, err := AllocFromStr("100", 1)
	require.NoError(t, err)

	for bit := ColType(1); bit <= ColTypeAll && bit != 0; bit <<= 1 {
		for mt := MemType(0); mt < MemTypeLast; mt++ {
			cell, err := m.Cell(bit, mt)
			require.NoError(t, err)
			require.Equal(t, []Range{{Start: 0, End: MsgMax, Score: 100}}, cell)
		}
	}
}

func TestAllocFromStrFieldsInAnyOrder(t *testing.T) {
	a, err := AllocFromStr("allreduce:host:50", 1)
	require.NoError(t, err)
	b, err := AllocFromStr("50:allreduce:host", 1)
	require.NoError(t, err)
	c, err := AllocFromStr("host:50:allreduce", 1)
	require.NoError(t, err)

	for _, m := range []*ScoreMap{a, b, c} {
		cell, err := m.Cell(ColAllreduce, MemHost)
		require.NoError(t, err)
		require.Equal(t, []Range{{Start: 0, End: MsgMax, Score: 50}}, cell)
	}
}

func TestAllocFromStrUnionOfEntries(t *testing.T) {
	m, err := AllocFromStr("allreduce:host:0-1K:10#allreduce:host:1K-1M:20", 1)
	require.NoError(t, err)

	cell, err := m.Cell(ColAllreduce, MemHost)
	require.NoError(t, err)
	require.Equal(t, []Range{
		{Start: 0, End: 1 << 10, Score: 10},
		{Start: 1 << 10, End: 1 << 20, Score: 20},
	}, cell)
}

func TestAllocFromStrCollListCommaSeparated(t *testing.T) {
	m, err := AllocFromStr("barrier,bcast:host:10", 1)
	require.NoError(t, err)

	for _, ct := range []ColType{ColBarrier, ColBcast} {
		cell, err := m.Cell(ct, MemHost)
		require.NoError(t, err)
		require.Len(t, cell, 1)
	}
	cell, err := m.Cell(ColAllreduce, MemHost)
	require.NoError(t, err)
	require.Empty(t, cell)
}

func TestAllocFromStrInfScore(t *testing.T) {
	m, err := AllocFromStr("allreduce:inf", 1)
	require.NoError(t, err)
	cell, err := m.Cell(ColAllreduce, MemHost)
	require.NoError(t, err)
	require.Equal(t, ScoreMax, cell[0].Score)
}

func TestAllocFromStrEntryWithNoScoreIsNoOp(t *testing.T) {
	m, err := AllocFromStr("allreduce:host", 1)
	require.NoError(t, err)
	cell, err := m.Cell(ColAllreduce, MemHost)
	require.NoError(t, err)
	require.Empty(t, cell)
}

func TestAllocFromStrUnknownTokenReportsNotFound(t *testing.T) {
	_, err := AllocFromStr("allreduc:host:10", 1)
	require.Error(t, err)
	require.Equal(t, NotFound, StatusOf(err))
}

func TestAllocFromStrOverlappingMsgRangesWithinEntryFail(t *testing.T) {
	_, err := AllocFromStr("allreduce:host:0-1K,500-2K:10", 1)
	require.Error(t, err)
}

func TestAllocFromStrMalformedMsgListReportsInvalidParam(t *testing.T) {
	_, err := AllocFromStr("allreduce:host:1K-:10", 1)
	require.Error(t, err)
	require.Equal(t, InvalidParam, StatusOf(err), "a malformed msg_list token must be diagnosed as such, not reported as an unknown field")
}

func TestParseMsgRangesRejectsMalformed(t *testing.T) {
	_, err := parseMsgRanges("1K")
	require.Error(t, err)
	_, err = parseMsgRanges("1K-")
	require.Error(t, err)
	_, err = parseMsgRanges("2K-1K")
	require.Error(t, err)
}

func TestParseMemUnitsSuffixes(t *testing.T) {
	v, err := parseMemUnits("4K")
	require.NoError(t, err)
	require.Equal(t, uint64(4<<10), v)

	v, err = parseMemUnits("2Mb")
	require.NoError(t, err)
	require.Equal(t, uint64(2<<20), v)

	v, err = parseMemUnits("1GB")
	require.NoError(t, err)
	require.Equal(t, uint64(1<<30), v)

	v, err = parseMemUnits("128")
	require.NoError(t, err)
	require.Equal(t, uint64(128), v)
}
