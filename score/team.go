package score

// simpleTeam is a minimal TeamRef: just a stable numeric identity. The
// real team/context lifecycle is out of scope (spec.md §1); this exists
// so callers that don't have a real team handle yet (tests, the CLI,
// plugin.Provider samples) have something to pass around.
type simpleTeam uint64

func (t simpleTeam) ID() uint64 { return uint64(t) }

// NewSimpleTeam wraps id as a TeamRef.
func NewSimpleTeam(id uint64) TeamRef { return simpleTeam(id) }
