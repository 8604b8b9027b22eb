package score

// rangeList is the per-(coll,mem) ordered, disjoint sequence of Ranges.
// Represented as a plain slice rather than the teacher C code's intrusive
// linked list: forward iteration, insert-after-cursor and delete-at-cursor
// all translate directly to slice index arithmetic, and Go's append/copy
// already do the splicing an intrusive list needed bespoke code for.
type rangeList []Range

func cloneRangeList(l rangeList) rangeList {
	if len(l) == 0 {
		return nil
	}
	out := make(rangeList, len(l))
	copy(out, l)
	return out
}

// insertAt splices r into list at index idx, shifting later elements
// right by one.
func insertAt(list rangeList, idx int, r Range) rangeList {
	list = append(list, Range{})
	copy(list[idx+1:], list[idx:])
	list[idx] = r
	return list
}

// addRange is the RangeList primitive insert (spec.md §4.1). score == 0
// is a silent no-op, never an error: callers emit "disabled" entries
// uniformly rather than special-casing them.
func addRange(list rangeList, start, end uint64, sc Score, init InitFn, team TeamRef) (rangeList, error) {
	if start >= end {
		return list, errInvalidParam("add_range: start %d >= end %d", start, end)
	}
	if sc == ScoreDisabled {
		return list, nil
	}
	pos := 0
	for pos < len(list) && list[pos].End <= start {
		pos++
	}
	if pos < len(list) && list[pos].Start < end {
		return list, errInvalidParam("add_range: [%d,%d) overlaps existing [%d,%d)",
			start, end, list[pos].Start, list[pos].End)
	}
	r := Range{Start: start, End: end, Score: sc, Init: init, Team: team}
	return insertAt(cloneRangeList(list), pos, r), nil
}

// coalesce merges adjacent Ranges sharing attributes in place, keeping
// the RangeList invariant that no two touching Ranges share
// (score, init, team).
func coalesce(list rangeList) rangeList {
	if len(list) == 0 {
		return list
	}
	out := list[:1]
	for _, r := range list[1:] {
		last := &out[len(out)-1]
		if last.touches(r) {
			last.End = r.End
			continue
		}
		out = append(out, r)
	}
	return out
}

// cursor walks a rangeList front to back, allowing the current head to be
// mutated in place (a split) without being consumed.
type cursor struct {
	list rangeList
	pos  int
}

func (c *cursor) empty() bool   { return c.pos >= len(c.list) }
func (c *cursor) head() *Range  { return &c.list[c.pos] }
func (c *cursor) pop() Range    { r := c.list[c.pos]; c.pos++; return r }
func (c *cursor) rest() rangeList { return c.list[c.pos:] }

// mergeOne combines two cells' RangeLists per spec.md §4.2: for each pair
// of current front Ranges, identify left/right by (start, then end) and
// resolve their geometric relation, processed left-to-right on working
// copies of both inputs. The open question in spec.md §9 is preserved
// verbatim: in the "contains" branch, when the inner (right) range wins,
// left is shrunk to its suffix and kept as the current head rather than
// emitted, so it remains a candidate against further ranges from the
// other list.
func mergeOne(a, b rangeList) rangeList {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	if len(a) == 0 {
		return cloneRangeList(b)
	}
	if len(b) == 0 {
		return cloneRangeList(a)
	}

	c1 := &cursor{list: cloneRangeList(a)}
	c2 := &cursor{list: cloneRangeList(b)}
	var out rangeList

	for !c1.empty() || !c2.empty() {
		if c1.empty() {
			out = append(out, c2.rest()...)
			break
		}
		if c2.empty() {
			out = append(out, c1.rest()...)
			break
		}
		r1 := c1.head()
		r2 := c2.head()

		var left, right *Range
		var leftCur, rightCur *cursor
		switch {
		case r1.Start == r2.Start && r1.End == r2.End:
			// Identical extents: emit the higher score, ties keep r1.
			best := *r1
			if r2.Score > r1.Score {
				best = *r2
			}
			out = append(out, best)
			c1.pop()
			c2.pop()
			continue
		case r1.Start == r2.Start:
			if r1.End < r2.End {
				left, leftCur = r1, c1
				right, rightCur = r2, c2
			} else {
				left, leftCur = r2, c2
				right, rightCur = r1, c1
			}
		case r1.Start < r2.Start:
			left, leftCur = r1, c1
			right, rightCur = r2, c2
		default:
			left, leftCur = r2, c2
			right, rightCur = r1, c1
		}

		switch {
		case left.End <= right.Start:
			// Disjoint: emit left unchanged, advance.
			out = append(out, *left)
			leftCur.pop()
		case left.End < right.End:
			// Partial overlap.
			if left.Score >= right.Score {
				right.Start = left.End
				out = append(out, *left)
				leftCur.pop()
			} else {
				trimmed := *left
				trimmed.End = right.Start
				leftCur.pop()
				if trimmed.Start < trimmed.End {
					out = append(out, trimmed)
				}
			}
		default:
			// left contains right (left.End >= right.End).
			if left.Score >= right.Score {
				rightCur.pop()
			} else {
				prefix := *left
				prefix.End = right.Start
				if prefix.Start < prefix.End {
					out = append(out, prefix)
				}
				out = append(out, *right)
				rightCur.pop()
				left.Start = right.End // suffix stays the working head
				if left.Start >= left.End {
					// left and right shared the same End: there is no
					// suffix left to re-enter the working list.
					leftCur.pop()
				}
			}
		}
	}
	return coalesce(out)
}

// applyOverlay overwrites dst's score with src's, and dst's Init/Team
// with src's whenever src carries one: src.Init == nil means "apply score
// only, keep existing init" (spec.md §4.3), which is exactly what a bare
// selection-string overlay produces, while UpdateFromStr stamps a
// default Init/Team onto its overlay ranges first so they do propagate.
func applyOverlay(dst *Range, src Range) {
	dst.Score = src.Score
	if src.Init != nil {
		dst.Init = src.Init
	}
	if src.Team != nil {
		dst.Team = src.Team
	}
}

// updateOne overlays src onto dest per spec.md §4.3: an asymmetric walk
// where src wins on overlap, followed by removal of score==0 ranges
// (overlay-imposed disables) and coalescing.
func updateOne(dest, src rangeList) rangeList {
	if len(src) == 0 || len(dest) == 0 {
		return cloneRangeList(dest)
	}
	d := cloneRangeList(dest)
	s := cloneRangeList(src)
	di, si := 0, 0
	for di < len(d) && si < len(s) {
		rd := &d[di]
		rs := &s[si]
		switch {
		case rd.Start >= rs.End:
			si++
		case rd.End <= rs.Start:
			di++
		case rd.Start < rs.Start:
			left := *rd
			left.End = rs.Start
			right := *rd
			right.Start = rs.Start
			d[di] = left
			d = insertAt(d, di+1, right)
			di++
		case rd.End <= rs.End:
			applyOverlay(rd, *rs)
			di++
		default:
			left := *rd
			left.End = rs.End
			applyOverlay(&left, *rs)
			right := *rd
			right.Start = rs.End
			d[di] = left
			d = insertAt(d, di+1, right)
			si++
		}
	}

	result := make(rangeList, 0, len(d))
	for _, r := range d {
		if r.Score != ScoreDisabled {
			result = append(result, r)
		}
	}
	return coalesce(result)
}
