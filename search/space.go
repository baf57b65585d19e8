package search

// Space is the contract every searchable problem satisfies. The engine has
// no knowledge of the concrete problem behind it; a state is an opaque
// comparable value used as a set member and map key.
//
// Implementations must keep Start and IsGoal pure with respect to search
// progress: Start returns the same state on every call, and IsGoal may
// depend on the problem's global structure but never on engine bookkeeping.
// Successors must return the same set of states for repeated calls with the
// same argument (ordering is free to vary and the engine never relies on
// it); the one sanctioned exception is a space that deliberately couples
// exploration with mutation, such as maze.Generator.
type Space[S comparable] interface {
	// Start returns the single designated start state.
	Start() S

	// IsGoal reports whether s satisfies the goal condition.
	IsGoal(s S) bool

	// Successors returns the states directly reachable from s in one step.
	// It may be empty (terminal state) and must not contain s itself unless
	// a genuine self-loop exists. Duplicates are tolerated but meaningless:
	// the engine deduplicates through its visited set.
	Successors(s S) []S
}
