package digraph

import (
	"fmt"
	"math"
	"sort"

	"github.com/pathscout/pathscout/search"
)

// DirectedGraph is a state space backed by a fixed n×n adjacency matrix.
// It is immutable once built; the input matrix is deep-copied.
type DirectedGraph struct {
	matrix [][]float64
	goals  map[int]bool
	start  int
}

// compile-time contract check
var _ search.Space[int] = (*DirectedGraph)(nil)

// New constructs a DirectedGraph from a square adjacency matrix and a set of
// goal indices. Cell (i,j) holds the weight of edge i→j, or NoEdge.
// Returns ErrEmptyMatrix, ErrNonSquare, ErrBadWeight, or ErrIndexRange on
// invalid input.
func New(matrix [][]float64, goals []int, opts ...Option) (*DirectedGraph, error) {
	if len(matrix) == 0 {
		return nil, ErrEmptyMatrix
	}
	n := len(matrix)

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// Deep copy with validation to guarantee immutability
	cells := make([][]float64, n)
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, i, len(row), n)
		}
		cells[i] = make([]float64, n)
		for j, w := range row {
			if math.IsNaN(w) || math.IsInf(w, -1) {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %v", ErrBadWeight, i, j, w)
			}
			cells[i][j] = w
		}
	}

	if o.start < 0 || o.start >= n {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", ErrIndexRange, o.start, n)
	}
	goalSet := make(map[int]bool, len(goals))
	for _, g := range goals {
		if g < 0 || g >= n {
			return nil, fmt.Errorf("%w: goal %d not in [0,%d)", ErrIndexRange, g, n)
		}
		goalSet[g] = true
	}

	return &DirectedGraph{matrix: cells, goals: goalSet, start: o.start}, nil
}

// Order returns the number of vertices n.
func (g *DirectedGraph) Order() int { return len(g.matrix) }

// Start returns the configured start vertex.
func (g *DirectedGraph) Start() int { return g.start }

// IsGoal reports whether state belongs to the configured goal set.
func (g *DirectedGraph) IsGoal(state int) bool { return g.goals[state] }

// Goals returns the goal indices in ascending order.
func (g *DirectedGraph) Goals() []int {
	out := make([]int, 0, len(g.goals))
	for i := range g.goals {
		out = append(out, i)
	}
	sort.Ints(out)

	return out
}

// Successors scans row state and returns the column indices holding a
// present edge, in ascending order. The state must be in [0, Order()).
func (g *DirectedGraph) Successors(state int) []int {
	if state < 0 || state >= len(g.matrix) {
		return nil
	}
	var out []int
	for j, w := range g.matrix[state] {
		if w != NoEdge {
			out = append(out, j)
		}
	}

	return out
}

// WeightedSuccessors returns the successors of state together with their
// edge weights. Traversal never consumes weights; they are preserved for
// weighted-search extensions.
func (g *DirectedGraph) WeightedSuccessors(state int) map[int]float64 {
	if state < 0 || state >= len(g.matrix) {
		return nil
	}
	out := make(map[int]float64)
	for j, w := range g.matrix[state] {
		if w != NoEdge {
			out[j] = w
		}
	}

	return out
}

// Weight returns the weight of edge i→j and whether that edge exists.
func (g *DirectedGraph) Weight(i, j int) (float64, bool) {
	if i < 0 || i >= len(g.matrix) || j < 0 || j >= len(g.matrix) {
		return 0, false
	}
	w := g.matrix[i][j]
	if w == NoEdge {
		return 0, false
	}

	return w, true
}
