package search_test

import (
	"testing"

	"github.com/pathscout/pathscout/search"
)

// mapSpace is a minimal adjacency-map state space used to exercise the
// engine without depending on the concrete problem packages.
type mapSpace struct {
	start int
	goals map[int]bool
	edges map[int][]int
}

func (m mapSpace) Start() int             { return m.start }
func (m mapSpace) IsGoal(s int) bool      { return m.goals[s] }
func (m mapSpace) Successors(s int) []int { return m.edges[s] }

func goals(ids ...int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	return set
}

// chainSpace is 0→1→…→n with goal {n}.
func chainSpace(n int) mapSpace {
	edges := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		edges[i] = []int{i + 1}
	}

	return mapSpace{start: 0, goals: goals(n), edges: edges}
}

// checkPath asserts the path contract shared by both traversals: non-empty,
// starts at the start state, ends on a goal, every consecutive pair is a
// successor edge, and no state repeats.
func checkPath[S comparable](t *testing.T, sp search.Space[S], path []S) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("path is empty")
	}
	if path[0] != sp.Start() {
		t.Errorf("path starts at %v; want start state %v", path[0], sp.Start())
	}
	if last := path[len(path)-1]; !sp.IsGoal(last) {
		t.Errorf("path ends at non-goal state %v", last)
	}
	seen := make(map[S]bool, len(path))
	for i, s := range path {
		if seen[s] {
			t.Errorf("state %v repeats in path %v", s, path)
		}
		seen[s] = true
		if i == 0 {
			continue
		}
		if !contains(sp.Successors(path[i-1]), s) {
			t.Errorf("consecutive pair (%v, %v) not connected by an edge", path[i-1], s)
		}
	}
}

func contains[S comparable](list []S, want S) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}

	return false
}
