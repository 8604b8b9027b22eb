package score

// Update overlays src onto dest in place: for every (coll, mem) cell, src
// wins on overlap, a score of 0 in src disables the overlaid interval
// (the removal pass turns that into a gap), and dest is otherwise
// unchanged (spec.md §4.3). update(dest, ∅) leaves dest unchanged.
func Update(dest, src *ScoreMap) error {
	for i := 0; i < ColTypeNum; i++ {
		for j := 0; j < MemTypeLast; j++ {
			dest.cells[i][j] = updateOne(dest.cells[i][j], src.cells[i][j])
			dest.idx[i][j] = nil
		}
	}
	return nil
}

// UpdateFromStr parses str into a fresh overlay ScoreMap and applies it to
// dest via Update (spec.md §4.6, mirroring ucc_coll_score_update_from_str).
// The selection grammar carries no Init/Team of its own, so every range the
// overlay introduces is stamped with defaultInit/team before the overlay is
// applied. The temporary overlay map is discarded after use.
func UpdateFromStr(dest *ScoreMap, str string, teamSize uint32, defaultInit InitFn, team TeamRef) error {
	overlay, err := AllocFromStr(str, teamSize)
	if err != nil {
		return err
	}
	for i := 0; i < ColTypeNum; i++ {
		for j := 0; j < MemTypeLast; j++ {
			for k, r := range overlay.cells[i][j] {
				if r.Init == nil {
					r.Init = defaultInit
				}
				if r.Team == nil {
					r.Team = team
				}
				overlay.cells[i][j][k] = r
			}
		}
	}
	return Update(dest, overlay)
}
