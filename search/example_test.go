package search_test

import (
	"fmt"

	"github.com/pathscout/pathscout/search"
)

// ringSpace is a directed ring 0→1→…→n-1→0 used for the examples.
type ringSpace struct {
	n    int
	goal int
}

func (r ringSpace) Start() int        { return 0 }
func (r ringSpace) IsGoal(s int) bool { return s == r.goal }
func (r ringSpace) Successors(s int) []int {
	return []int{(s + 1) % r.n}
}

// ExampleBFS finds the fewest-edges path around a directed ring.
func ExampleBFS() {
	res, err := search.BFS[int](ringSpace{n: 6, goal: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Println("expanded:", res.Stats.StatesExpanded)
	// Output:
	// path: [0 1 2 3 4]
	// expanded: 4
}

// ExampleDFS shows the failure variant: a goal outside the ring is
// unreachable, and the engine reports it as a distinguishable error rather
// than an empty path.
func ExampleDFS() {
	_, err := search.DFS[int](ringSpace{n: 4, goal: 99})
	fmt.Println(err)
	// Output:
	// search: no path from start to goal
}
