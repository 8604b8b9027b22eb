package score

// Range is a single half-open message-size interval [Start, End) tagged
// with a score and a borrowed implementation reference. It is a value
// type; its identity is its position within a RangeList, not a pointer.
type Range struct {
	Start uint64
	End   uint64
	Score Score
	Init  InitFn  // may be nil: "apply score only, keep existing init"
	Team  TeamRef // may be nil alongside a nil Init
}

func (r Range) sameAttrs(o Range) bool {
	return r.Score == o.Score && r.Init == o.Init && r.Team == o.Team
}

// touches reports whether r and o are adjacent and share attributes, i.e.
// whether they should be coalesced into one Range.
func (r Range) touches(o Range) bool {
	return r.End == o.Start && r.sameAttrs(o)
}
