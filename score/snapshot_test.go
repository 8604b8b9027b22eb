package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSample(t *testing.T) *ScoreMap {
	t.Helper()
	m := Alloc()
	require.NoError(t, m.AddRange(ColAllreduce, MemHost, 0, 1<<20, 10, nil, nil))
	require.NoError(t, m.AddRange(ColAllreduce, MemHost, 1<<20, MsgMax, 20, nil, nil))
	require.NoError(t, m.AddRange(ColBcast, MemCuda, 0, MsgMax, 5, nil, nil))
	return m
}

func TestDumpLoadRoundTripsFingerprint(t *testing.T) {
	m := buildSample(t)
	var sb strings.Builder
	require.NoError(t, m.Dump(&sb))

	loaded, err := Load(strings.NewReader(sb.String()))
	require.NoError(t, err)
	require.Equal(t, m.Fingerprint(), loaded.Fingerprint())
}

func TestLoadRejectsUnknownNames(t *testing.T) {
	_, err := Load(strings.NewReader("notacoll:host:5:0-100\n"))
	require.Error(t, err)
	require.Equal(t, InvalidParam, StatusOf(err))
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := Load(strings.NewReader("allreduce:host:5\n"))
	require.Error(t, err)
}

func TestLoadSkipsBlankLines(t *testing.T) {
	loaded, err := Load(strings.NewReader("\nallreduce:host:5:0-100\n\n"))
	require.NoError(t, err)
	cell, err := loaded.Cell(ColAllreduce, MemHost)
	require.NoError(t, err)
	require.Equal(t, []Range{{Start: 0, End: 100, Score: 5}}, cell)
}

func TestQuickSnapshotRoundTripsFingerprint(t *testing.T) {
	m := buildSample(t)
	b, err := m.QuickSnapshot()
	require.NoError(t, err)

	loaded, err := LoadQuickSnapshot(b)
	require.NoError(t, err)
	require.Equal(t, m.Fingerprint(), loaded.Fingerprint())
}
