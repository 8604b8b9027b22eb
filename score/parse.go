package score

import (
	"strings"

	"github.com/grailbio/base/log"
)

// parseEntry parses one ':'-separated entry of the selection-string
// grammar (spec.md §4.5, §6) and calls AddRange on m for the Cartesian
// product of its coll_list × mem_list × msg_list fields. Fields may
// appear in any order; each token is classified greedily (coll_list,
// then mem_list, then score, then msg_list) and the first parser that
// claims a token wins it. A score is required — an entry that parses
// cleanly but never sees a score field is a documented no-op.
func parseEntry(m *ScoreMap, entry string) error {
	tokens := strings.Split(entry, ":")

	var collMask ColType
	var haveColl bool
	var memTypes []MemType
	var haveMem bool
	scoreVal := ScoreInvalid
	var msgRanges []msgRange
	var haveMsg bool

	for _, tok := range tokens {
		if !haveColl {
			if mask, ok, err := tryCollList(tok); err != nil {
				return err
			} else if ok {
				collMask, haveColl = mask, true
				continue
			}
		}
		if !haveMem {
			if mts, ok, err := tryMemList(tok); err != nil {
				return err
			} else if ok {
				memTypes, haveMem = mts, true
				continue
			}
		}
		if scoreVal == ScoreInvalid {
			if sv, ok, err := tryScore(tok); err != nil {
				return err
			} else if ok {
				scoreVal = sv
				continue
			}
		}
		if !haveMsg {
			if ranges, ok, err := tryMsgList(tok); err != nil {
				return err
			} else if ok {
				msgRanges, haveMsg = ranges, true
				continue
			}
		}
		suggestion := suggestName(tok, collNameToType, memNameToType)
		if suggestion != "" {
			return errNotFound("selection string: token %q matches no field (did you mean %q?)", tok, suggestion)
		}
		return errNotFound("selection string: token %q matches no field", tok)
	}

	if scoreVal == ScoreInvalid {
		// No score in this entry: documented no-op (spec.md §4.5).
		return nil
	}
	if !haveColl {
		collMask = ColTypeAll
	}
	if !haveMem {
		memTypes = make([]MemType, MemTypeLast)
		for i := range memTypes {
			memTypes[i] = MemType(i)
		}
	}
	if !haveMsg {
		msgRanges = []msgRange{{low: 0, high: MsgMax}}
	}

	for bit := ColType(1); bit <= ColTypeAll && bit != 0; bit <<= 1 {
		if collMask&bit == 0 {
			continue
		}
		for _, mt := range memTypes {
			for _, r := range msgRanges {
				if err := m.AddRange(bit, mt, r.low, r.high, scoreVal, nil, nil); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// AllocFromStr allocates a new ScoreMap and parses str into it entry by
// entry (spec.md §4.6). teamSize is accepted for parity with the C API,
// which plans to support team-size-relative ranges (spec.md's TODO); it
// is currently unused, matching the upstream implementation's "not yet
// implemented" state.
func AllocFromStr(str string, teamSize uint32) (*ScoreMap, error) {
	_ = teamSize
	m := Alloc()
	entries := strings.Split(str, "#")
	for _, entry := range entries {
		if err := parseEntry(m, entry); err != nil {
			log.Error.Printf("failed to parse selection string entry %q: %v", entry, err)
			return nil, err
		}
	}
	return m, nil
}
