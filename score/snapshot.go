package score

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/vcontext"
	"github.com/klauspost/compress/gzip"
)

// dumpLine formats one Range as a selection-string-shaped line:
// coll:mem:score:low-high. Init/Team are never round-tripped — a
// snapshot is a description of scores and boundaries, not of the
// borrowed implementation handles bound to them.
func dumpLine(coll ColType, mem MemType, r Range) string {
	return fmt.Sprintf("%s:%s:%d:%d-%d", coll, mem, r.Score, r.Start, r.End)
}

// Dump writes a line-oriented text snapshot of m to w (spec.md §4.10).
func (m *ScoreMap) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for bit := ColType(1); bit <= ColTypeAll && bit != 0; bit <<= 1 {
		for mt := MemType(0); int(mt) < MemTypeLast; mt++ {
			ranges, err := m.Cell(bit, mt)
			if err != nil {
				return err
			}
			for _, r := range ranges {
				if _, err := fmt.Fprintln(bw, dumpLine(bit, mt, r)); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}

// Load reads a snapshot written by Dump and rebuilds a ScoreMap from it.
// Lines with an unrecognized coll/mem name are rejected as InvalidParam,
// matching AddRange's own strictness.
func Load(r io.Reader) (*ScoreMap, error) {
	m := Alloc()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) != 4 {
			return nil, errInvalidParam("snapshot: malformed line %q", line)
		}
		coll, ok := collNameToType[fields[0]]
		if !ok {
			return nil, errInvalidParam("snapshot: unknown coll name %q", fields[0])
		}
		mem, ok := memNameToType[fields[1]]
		if !ok {
			return nil, errInvalidParam("snapshot: unknown mem name %q", fields[1])
		}
		sc, ok, err := tryScore(fields[2])
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errInvalidParam("snapshot: malformed score %q", fields[2])
		}
		ranges, err := parseMsgRanges(fields[3])
		if err != nil {
			return nil, err
		}
		if len(ranges) != 1 {
			return nil, errInvalidParam("snapshot: expected exactly one range, got %q", fields[3])
		}
		if err := m.AddRange(coll, mem, ranges[0].low, ranges[0].high, sc, nil, nil); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// DumpToPath writes a snapshot of m to path, local or s3://, gzip
// compressing it whenever the path's extension says to (mirroring the
// teacher's fileio.DetermineType-driven gzip auto-detect).
func (m *ScoreMap) DumpToPath(path string) error {
	ctx := vcontext.Background()
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close(ctx) }()

	w := io.Writer(out.Writer(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz := gzip.NewWriter(w)
		defer func() { _ = gz.Close() }()
		w = gz
	}
	return m.Dump(w)
}

// LoadFromPath reads a snapshot written by DumpToPath from path, local or
// s3://.
func LoadFromPath(path string) (*ScoreMap, error) {
	ctx := vcontext.Background()
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close(ctx) }()

	r := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		if r, err = gzip.NewReader(r); err != nil {
			return nil, err
		}
	}
	return Load(r)
}

// QuickSnapshot encodes m with snappy rather than gzip, an in-memory form
// for callers to whom lower latency matters more than size (spec.md
// §4.10). The CLI does not use it; its subcommands read snapshot files
// through LoadFromPath.
func (m *ScoreMap) QuickSnapshot() ([]byte, error) {
	var sb strings.Builder
	if err := m.Dump(&sb); err != nil {
		return nil, err
	}
	return snappy.Encode(nil, []byte(sb.String())), nil
}

// LoadQuickSnapshot is the inverse of QuickSnapshot.
func LoadQuickSnapshot(b []byte) (*ScoreMap, error) {
	raw, err := snappy.Decode(nil, b)
	if err != nil {
		return nil, err
	}
	return Load(strings.NewReader(string(raw)))
}
