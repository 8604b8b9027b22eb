package score

import (
	"strconv"
	"strings"

	"github.com/antzucaro/matchr"
)

var collNameToType = func() map[string]ColType {
	m := make(map[string]ColType, len(colTypeNames))
	for t, name := range colTypeNames {
		m[name] = t
	}
	return m
}()

var memNameToType = func() map[string]MemType {
	m := make(map[string]MemType, len(memTypeNames))
	for t, name := range memTypeNames {
		m[name] = t
	}
	return m
}()

// suggestName returns the known name closest to tok by Jaro-Winkler
// similarity, for NotFound error messages. Purely cosmetic: it never
// changes what gets parsed, only what the error says.
func suggestName(tok string, known map[string]ColType, knownMem map[string]MemType) string {
	best := ""
	bestScore := 0.0
	consider := func(name string) {
		sim := matchr.JaroWinkler(tok, name, true)
		if sim > bestScore {
			bestScore = sim
			best = name
		}
	}
	for name := range known {
		consider(name)
	}
	for name := range knownMem {
		consider(name)
	}
	if bestScore < 0.7 {
		return ""
	}
	return best
}

// ParseColTypeName resolves a single collective name (e.g. "allreduce") to
// its ColType, for callers outside the selection-string grammar (the CLI's
// --coll flag) that want the same names without building a full entry.
func ParseColTypeName(name string) (ColType, bool) {
	t, ok := collNameToType[name]
	return t, ok
}

// ParseMemTypeName resolves a single memory-kind name (e.g. "cuda") to its
// MemType, for the same reason as ParseColTypeName.
func ParseMemTypeName(name string) (MemType, bool) {
	t, ok := memNameToType[name]
	return t, ok
}

// tryCollList classifies tok as a coll_list field: comma-separated coll
// names. Any unknown name fails the classifier so the token can be tried
// against the next field (spec.md §4.5).
func tryCollList(tok string) (ColType, bool, error) {
	parts := strings.Split(tok, ",")
	var mask ColType
	for _, p := range parts {
		t, ok := collNameToType[p]
		if !ok {
			return 0, false, nil
		}
		mask |= t
	}
	return mask, true, nil
}

// tryMemList classifies tok as a mem_list field.
func tryMemList(tok string) ([]MemType, bool, error) {
	parts := strings.Split(tok, ",")
	out := make([]MemType, 0, len(parts))
	for _, p := range parts {
		t, ok := memNameToType[p]
		if !ok {
			return nil, false, nil
		}
		out = append(out, t)
	}
	return out, true, nil
}

// tryScore classifies tok as a score field: "inf" or a decimal integer.
func tryScore(tok string) (Score, bool, error) {
	if tok == "inf" {
		return ScoreMax, true, nil
	}
	v, err := strconv.ParseUint(tok, 10, 62)
	if err != nil {
		return 0, false, nil
	}
	return Score(v), true, nil
}

// tryMsgList classifies tok as a msg_list field. Once tok contains a
// dash it can only be a msg_list (no other field's grammar does), so a
// parseMsgRanges failure here is a real malformed-range error, not a
// "try the next classifier" signal.
func tryMsgList(tok string) ([]msgRange, bool, error) {
	if !strings.ContainsAny(tok, "-") {
		return nil, false, nil
	}
	ranges, err := parseMsgRanges(tok)
	if err != nil {
		return nil, false, err
	}
	return ranges, true, nil
}
