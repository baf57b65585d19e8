package search

// DFS runs depth-first search over sp from its start state, applying any
// number of functional Options, and returns the first goal path found.
//
// DFS shares the structural skeleton of BFS with a last-in-first-out
// frontier, so it gives no shortest-path guarantee: it returns some valid
// path, not necessarily a minimal one. Which path depends on the order the
// space yields successors in; the engine neither assumes nor imposes one.
//
// States are marked visited at push time, matching BFS. The trade-off is
// deliberate: a state pushed once is never re-queued even if an alternate
// route to it is uncovered later, which can change the path DFS finds (but
// never whether one is found, given a finite space and a reachable goal).
// Marking at pop time instead would alter the discipline and desynchronize
// the statistics semantics from BFS.
//
// Returns ErrSpaceNil for a nil space, ErrOptionViolation for bad options,
// ErrPathNotFound when no goal is reachable from the start, and
// ErrExpansionLimit if a WithMaxExpansions bound trips first.
func DFS[S comparable](sp Space[S], opts ...Option[S]) (*Result[S], error) {
	return run(sp, &lifoFrontier[S]{}, opts)
}
