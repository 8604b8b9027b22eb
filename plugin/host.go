package plugin

import "github.com/openucx/collscore/score"

// algoInit is a trivial InitFn: a named placeholder for "the function
// that would actually post this algorithm's collective task". Neither
// this package nor score ever calls it.
type algoInit string

func (a algoInit) Name() string { return string(a) }

// HostProvider registers the ring-based host-memory algorithms a UCP-like
// transport layer would (original_source's tl_ucp_team.c /
// allgather/allgather.c): every collective kind, host memory only, a
// single default-score range across the whole size axis. Real transports
// differentiate score by message size (e.g. a ring algorithm loses to a
// recursive-doubling one below some threshold); HostProvider intentionally
// keeps that simple since it's a stand-in, not a transport under test.
type HostProvider struct {
	// Score is the preference this provider registers its algorithms at.
	// Named fields rather than a constructor so callers can reuse the
	// zero value with Score left at its own chosen default.
	Score score.Score
}

func (p HostProvider) Name() string { return "ucp_host" }

func (p HostProvider) Build(team score.TeamRef) (*score.ScoreMap, error) {
	sc := p.Score
	if sc == score.ScoreDisabled {
		sc = 10
	}
	return score.BuildDefault(team, sc, algoInit("ring"), score.ColTypeAll, []score.MemType{score.MemHost})
}
