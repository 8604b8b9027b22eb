package score

// Merge combines a and b into a new ScoreMap: for each (coll, mem) cell,
// the higher score wins where the two inputs' ranges overlap, and both
// are kept where they're disjoint (spec.md §4.2). When freeInputs is set,
// a and b are left unusable (their cells are cleared) after the call,
// mirroring the C API's ucc_coll_score_merge(..., free_inputs) — Go's GC
// would reclaim them regardless, but clearing makes accidental reuse
// visible immediately instead of silently returning stale data.
func Merge(a, b *ScoreMap, freeInputs bool) (*ScoreMap, error) {
	out := Alloc()
	for i := 0; i < ColTypeNum; i++ {
		for j := 0; j < MemTypeLast; j++ {
			out.cells[i][j] = mergeOne(a.cells[i][j], b.cells[i][j])
		}
	}
	if freeInputs {
		*a = ScoreMap{}
		*b = ScoreMap{}
	}
	return out, nil
}

// MergeIn replaces *a with Merge(*a, b, true): a convenience for the
// common "fold a peer plugin's map into my running composite" pattern.
func MergeIn(a **ScoreMap, b *ScoreMap) error {
	merged, err := Merge(*a, b, true)
	if err != nil {
		return err
	}
	*a = merged
	return nil
}
