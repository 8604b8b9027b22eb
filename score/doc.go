// Package score implements the collective-operation score map: the
// interval-algebra engine that picks, for a given (collective kind, memory
// kind, message size), the implementation with the best registered score.
//
// A ScoreMap is a dense table keyed by (collective kind, memory kind); each
// cell holds a sorted, disjoint sequence of message-size ranges, each
// carrying a score and a borrowed implementation reference. Four
// operations combine or build these tables: AddRange (the primitive,
// overlap-refusing insert), Merge (pick the best score on overlap, keep
// both where disjoint), Update (asymmetric overlay: the updating map wins),
// and the selection-string parser (AllocFromStr / UpdateFromStr).
//
// The package never dereferences the InitFn/TeamRef values it stores; they
// are borrowed handles supplied by, and meaningful only to, the caller.
package score
