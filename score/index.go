package score

import (
	"fmt"

	"github.com/biogo/store/interval"
)

// Index is a derived, read-only point-query structure over a RangeList,
// built once and cached on the owning ScoreMap cell (spec.md §4.7). It
// never participates in the algebra: it is thrown away and rebuilt
// lazily whenever AddRange/Merge/Update touch the cell it was built
// from, so none of its own invariants need to survive across operations
// — RangeList stays the only source of truth.
type Index struct {
	tree   *interval.IntTree
	ranges []Range
}

// rangeNode adapts a Range to biogo/store/interval's Interface: a
// half-open IntRange plus a stable identity, used only as the tree's
// comparison key.
type rangeNode struct {
	id  uintptr
	ivl interval.IntRange
}

func (n *rangeNode) Overlap(b interval.IntRange) bool {
	return n.ivl.Start < b.End && b.Start < n.ivl.End
}
func (n *rangeNode) ID() uintptr             { return n.id }
func (n *rangeNode) Range() interval.IntRange { return n.ivl }
func (n *rangeNode) String() string {
	return fmt.Sprintf("[%d,%d)", n.ivl.Start, n.ivl.End)
}

// newIndex builds an Index over list. Message sizes are truncated to
// int, which is safe on any platform this package targets: MsgMax (1<<62)
// fits comfortably in a 64-bit int, and a 32-bit build would already have
// failed earlier allocating anything message-sized.
func newIndex(list rangeList) *Index {
	idx := &Index{tree: &interval.IntTree{}, ranges: append([]Range(nil), list...)}
	for i, r := range list {
		node := &rangeNode{
			id:  uintptr(i + 1),
			ivl: interval.IntRange{Start: int(r.Start), End: int(r.End)},
		}
		// RangeList is disjoint by construction, so insertion can never
		// legitimately fail; an error here would indicate a broken
		// invariant upstream, not a usage mistake worth surfacing to
		// Index's callers.
		_ = idx.tree.Insert(node, false)
	}
	return idx
}

// Lookup returns the Range covering size, if any. size >= MsgMax can
// never be covered (every stored Range ends at or before MsgMax), so it
// is rejected before the int(size) conversion below, which would
// otherwise overflow negative for size >= 1<<63.
func (idx *Index) Lookup(size uint64) (Range, bool) {
	if size >= MsgMax {
		return Range{}, false
	}
	q := &rangeNode{ivl: interval.IntRange{Start: int(size), End: int(size) + 1}}
	matches := idx.tree.Get(q)
	if len(matches) == 0 {
		return Range{}, false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.ID() < best.ID() {
			best = m
		}
	}
	return idx.ranges[best.ID()-1], true
}
