// Package plugin contains sample collaborators that produce ScoreMaps,
// standing in for the real transport plugins spec.md places out of
// scope (§1: "transport libraries and plugins that produce score maps for
// their own implementations"). They exist only to exercise the score
// package's algebra end to end; they implement no actual collective.
package plugin

import "github.com/openucx/collscore/score"

// Provider builds the ScoreMap describing which (coll, mem, size) cells
// one transport's algorithms claim, and at what score.
type Provider interface {
	Name() string
	Build(team score.TeamRef) (*score.ScoreMap, error)
}

// MergeAll folds every provider's ScoreMap together with score.Merge,
// mirroring spec.md §2's "Merger combines maps from peer plugins into
// one composite".
func MergeAll(team score.TeamRef, providers []Provider) (*score.ScoreMap, error) {
	composite := score.Alloc()
	for _, p := range providers {
		m, err := p.Build(team)
		if err != nil {
			return nil, err
		}
		merged, err := score.Merge(composite, m, true)
		if err != nil {
			return nil, err
		}
		composite = merged
	}
	return composite, nil
}
