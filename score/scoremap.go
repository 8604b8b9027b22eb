package score

// ScoreMap is the 2-D table of RangeLists indexed by (coll-index, mem).
// Empty cells are legal: they mean no implementation is registered for
// that (coll, mem) pair. ScoreMaps are created empty (Alloc), populated
// by AddRange / BuildDefault / the parser, transformed by Merge or
// Update, and queried read-only for dispatch. There is no explicit Free:
// a ScoreMap owns only its own Ranges, which Go's GC reclaims; the
// InitFn/TeamRef values it references are borrowed and never touched.
type ScoreMap struct {
	cells [ColTypeNum][MemTypeLast]rangeList
	idx   [ColTypeNum][MemTypeLast]*Index
}

// Alloc returns a new, empty ScoreMap.
func Alloc() *ScoreMap {
	return &ScoreMap{}
}

func cellIndices(coll ColType, mem MemType) (int, int, error) {
	if coll == 0 || coll&(coll-1) != 0 {
		return 0, 0, errInvalidParam("coll_type %v is not a single bit", coll)
	}
	ci := ilog2(coll)
	if ci < 0 || ci >= ColTypeNum {
		return 0, 0, errInvalidParam("coll_type %v out of range", coll)
	}
	if mem < 0 || int(mem) >= MemTypeLast {
		return 0, 0, errInvalidParam("mem_type %v out of range", mem)
	}
	return ci, int(mem), nil
}

// AddRange inserts a single Range into the (coll, mem) cell. It fails
// when start >= end or when the new range would overlap an existing one
// in that cell; score == 0 is a silent no-op (spec.md §4.1, §7).
func (m *ScoreMap) AddRange(coll ColType, mem MemType, start, end uint64, sc Score, init InitFn, team TeamRef) error {
	ci, mi, err := cellIndices(coll, mem)
	if err != nil {
		return err
	}
	updated, err := addRange(m.cells[ci][mi], start, end, sc, init, team)
	if err != nil {
		return err
	}
	m.cells[ci][mi] = updated
	m.idx[ci][mi] = nil // invalidate the derived query index
	return nil
}

// Cell returns a read-only snapshot of the (coll, mem) cell's Ranges, in
// ascending, disjoint order.
func (m *ScoreMap) Cell(coll ColType, mem MemType) ([]Range, error) {
	ci, mi, err := cellIndices(coll, mem)
	if err != nil {
		return nil, err
	}
	return append([]Range(nil), m.cells[ci][mi]...), nil
}

// Clone returns a deep copy of m (Ranges are copied by value; the
// borrowed Init/Team references inside them are shared, as they must be).
func (m *ScoreMap) Clone() *ScoreMap {
	out := Alloc()
	for i := 0; i < ColTypeNum; i++ {
		for j := 0; j < MemTypeLast; j++ {
			out.cells[i][j] = cloneRangeList(m.cells[i][j])
		}
	}
	return out
}

// BuildDefault populates a new ScoreMap with the single Range
// [0, MsgMax) carrying defaultScore/defaultInit/team, for every set bit
// of collMask and every listed memory kind (every memory kind, if
// memTypes is empty).
func BuildDefault(team TeamRef, defaultScore Score, defaultInit InitFn, collMask ColType, memTypes []MemType) (*ScoreMap, error) {
	m := Alloc()
	mts := memTypes
	if len(mts) == 0 {
		mts = make([]MemType, MemTypeLast)
		for i := range mts {
			mts[i] = MemType(i)
		}
	}
	for bit := ColType(1); bit <= ColTypeAll && bit != 0; bit <<= 1 {
		if collMask&bit == 0 {
			continue
		}
		for _, mt := range mts {
			if err := m.AddRange(bit, mt, 0, MsgMax, defaultScore, defaultInit, team); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// index lazily builds (or returns the cached) query Index for a cell.
func (m *ScoreMap) index(coll ColType, mem MemType) (*Index, error) {
	ci, mi, err := cellIndices(coll, mem)
	if err != nil {
		return nil, err
	}
	if m.idx[ci][mi] == nil {
		m.idx[ci][mi] = newIndex(m.cells[ci][mi])
	}
	return m.idx[ci][mi], nil
}

// Resolve finds the Range covering size in the (coll, mem) cell, if any,
// using the cached query Index (spec.md §4.7). The boolean result is
// false when no Range covers size (the cell is empty, or size falls in a
// gap between Ranges); an invalid coll or mem is reported as an error,
// the same as Cell/AddRange, rather than folded into that false.
func (m *ScoreMap) Resolve(coll ColType, mem MemType, size uint64) (InitFn, TeamRef, bool, error) {
	idx, err := m.index(coll, mem)
	if err != nil {
		return nil, nil, false, err
	}
	r, ok := idx.Lookup(size)
	if !ok {
		return nil, nil, false, nil
	}
	return r.Init, r.Team, true, nil
}
