package search

// BFS runs breadth-first search over sp from its start state, applying any
// number of functional Options, and returns the first goal path found.
//
// Because states are marked visited at enqueue time and the frontier is
// strictly first-in-first-out, the first time any state is dequeued it is
// dequeued at the minimum number of edges from the start: the returned path
// is a shortest path by edge count. Successor annotations such as numeric
// edge weights play no role; traversal is unit-cost.
//
// Returns ErrSpaceNil for a nil space, ErrOptionViolation for bad options,
// ErrPathNotFound when no goal is reachable from the start, and
// ErrExpansionLimit if a WithMaxExpansions bound trips first.
func BFS[S comparable](sp Space[S], opts ...Option[S]) (*Result[S], error) {
	return run(sp, &fifoFrontier[S]{}, opts)
}
