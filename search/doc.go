// Package search provides uninformed traversal — breadth-first and
// depth-first search — over abstract state spaces, returning the discovered
// path together with run statistics.
//
// What
//
//   - Space[S] is the capability every searchable problem implements:
//     a start state, a goal predicate, and a successor relation.
//   - BFS(sp) explores states in non-decreasing distance (edge count) from
//     the start and returns a fewest-edges shortest path to the first goal
//     state dequeued.
//   - DFS(sp) explores depth-first from the start and returns some valid
//     path, with no minimality guarantee.
//   - Both return a Result[S] containing:
//   - Path:  start → goal, inclusive, consecutive states connected
//   - Stats: PathLength, StatesExpanded, MaxFrontierSize
//
// Why
//
//   - Solve reachability and unweighted shortest-path problems in O(V + E)
//     without committing to a concrete graph representation.
//   - The engine interacts with the problem solely through Space[S], so a
//     fixed adjacency matrix, a procedurally generated maze, or any other
//     finite state graph plug in unchanged.
//
// Statistics semantics
//
//   - StatesExpanded counts states popped from the frontier and having their
//     successors examined. A state dequeued and recognized as a goal is NOT
//     counted as expanded.
//   - MaxFrontierSize is the frontier's high-water mark, sampled before
//     every dequeue (so the state about to be popped is counted) and never
//     less than 1 on any run that starts.
//   - PathLength is the number of states in the returned path (≥ 1; a found
//     path always contains at least the start state).
//
// Visited discipline
//
//	Both traversals mark states visited at discovery (enqueue/push) time,
//	not at expansion time. For BFS this yields the standard shortest-path
//	guarantee; for DFS it prevents a state from entering the frontier more
//	than once, keeping statistics semantics identical across the two
//	algorithms. See the DFS doc comment for the consequences.
//
// Complexity (V = reachable states, E = successor edges among them)
//
//   - Time:   O(V + E) for finite spaces
//   - Memory: O(V) for frontier, visited set, and parent map
//
// Termination
//
//	Termination is guaranteed only for finite state spaces. On an infinite
//	space with no reachable goal both traversals run unboundedly; callers
//	working with such spaces should bound exploration via WithMaxExpansions
//	or WithContext.
//
// Options
//
//   - WithContext(ctx):       cooperative cancellation, checked once per
//     iteration.
//   - WithMaxExpansions(n):   abort with ErrExpansionLimit after n
//     expansions (n == 0 disables the limit).
//   - WithOnEnqueue(fn):      hook invoked when a state is discovered.
//   - WithOnDequeue(fn):      hook invoked when a state is popped.
//
// Errors
//
//   - ErrSpaceNil        if the state space is nil.
//   - ErrPathNotFound    if the frontier empties with no goal discovered.
//   - ErrOptionViolation if an invalid Option is supplied.
//   - ErrExpansionLimit  if WithMaxExpansions was set and tripped.
package search
