package score

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeCombinesAcrossAllCells(t *testing.T) {
	a := Alloc()
	require.NoError(t, a.AddRange(ColBarrier, MemHost, 0, 100, 5, nil, nil))
	b := Alloc()
	require.NoError(t, b.AddRange(ColBcast, MemCuda, 0, 100, 5, nil, nil))

	out, err := Merge(a, b, false)
	require.NoError(t, err)

	cell, err := out.Cell(ColBarrier, MemHost)
	require.NoError(t, err)
	require.Len(t, cell, 1)

	cell, err = out.Cell(ColBcast, MemCuda)
	require.NoError(t, err)
	require.Len(t, cell, 1)
}

func TestMergeWithEmptyIsIdentity(t *testing.T) {
	a := Alloc()
	require.NoError(t, a.AddRange(ColAllreduce, MemHost, 0, 100, 5, nil, nil))
	empty := Alloc()

	out, err := Merge(a, empty, false)
	require.NoError(t, err)
	cell, err := out.Cell(ColAllreduce, MemHost)
	require.NoError(t, err)
	require.Len(t, cell, 1)
}

func TestMergeFreeInputsClearsOperands(t *testing.T) {
	a := Alloc()
	require.NoError(t, a.AddRange(ColAllreduce, MemHost, 0, 100, 5, nil, nil))
	b := Alloc()
	require.NoError(t, b.AddRange(ColAllreduce, MemHost, 100, 200, 5, nil, nil))

	_, err := Merge(a, b, true)
	require.NoError(t, err)

	cell, err := a.Cell(ColAllreduce, MemHost)
	require.NoError(t, err)
	require.Empty(t, cell)
}

func TestMergeInReplacesAccumulator(t *testing.T) {
	acc := Alloc()
	require.NoError(t, acc.AddRange(ColBarrier, MemHost, 0, 100, 5, nil, nil))
	peer := Alloc()
	require.NoError(t, peer.AddRange(ColBarrier, MemHost, 100, 200, 5, nil, nil))

	require.NoError(t, MergeIn(&acc, peer))

	cell, err := acc.Cell(ColBarrier, MemHost)
	require.NoError(t, err)
	require.Equal(t, []Range{{Start: 0, End: 200, Score: 5}}, cell)
}
