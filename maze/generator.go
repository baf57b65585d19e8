package maze

import (
	"fmt"
	"math/rand"

	"github.com/pathscout/pathscout/search"
)

// Generator recasts maze construction as a search problem: the board starts
// with every wall up, and expanding a state carves passages to its unvisited
// neighbors. The goal is reached when every cell has been visited, so
// running search.BFS or search.DFS over a Generator builds a complete maze.
//
// Successors deliberately mutates the generator's board — the sanctioned
// coupling of exploration and mutation. Calls are therefore not idempotent,
// and a Generator must be used for exactly one search. The board is
// uniquely owned by the generator until Maze hands it over.
type Generator struct {
	width, height int
	board         [][]Room
	rng           *rand.Rand
	start         Point
	visited       int
	total         int
}

// compile-time contract check
var _ search.Space[Point] = (*Generator)(nil)

// NewGenerator constructs a generator for a width×height board with all
// walls up and a random (seeded) start cell pre-marked visited.
// Returns ErrBadDimensions for non-positive dimensions.
func NewGenerator(width, height int, seed int64) (*Generator, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}

	rng := rngFromSeed(seed)
	g := &Generator{
		width:  width,
		height: height,
		board:  newBoard(width, height),
		rng:    rng,
		start:  Point{Row: rng.Intn(height), Col: rng.Intn(width)},
		total:  width * height,
	}
	g.board[g.start.Row][g.start.Col].visited = true
	g.visited = 1

	return g, nil
}

// Start returns the random cell generation begins from.
func (g *Generator) Start() Point { return g.start }

// IsGoal reports whether every cell has been visited, i.e. the maze is
// fully generated. The predicate depends on the board's global visitation
// structure, never on search-internal bookkeeping.
func (g *Generator) IsGoal(Point) bool { return g.visited == g.total }

// Successors carves a passage from s to each in-bounds neighbor not yet
// visited, marks those neighbors visited, and returns their states in a
// random order. Out-of-bounds sides keep their walls.
func (g *Generator) Successors(s Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range shuffledDirections(g.rng) {
		n := s.move(d)
		if n.Row < 0 || n.Row >= g.height || n.Col < 0 || n.Col >= g.width {
			continue
		}
		if g.board[n.Row][n.Col].visited {
			continue
		}
		carve(g.board, s, d)
		g.board[n.Row][n.Col].visited = true
		g.visited++
		out = append(out, n)
	}

	return out
}

// Done reports whether generation has completed (all cells visited).
func (g *Generator) Done() bool { return g.visited == g.total }

// Maze wraps the carved board as a solvable Maze, transferring board
// ownership. Start/goal default to the usual corners unless overridden via
// opts. Returns ErrOutOfBounds-wrapped errors from New on bad options, or
// an error if generation has not completed.
func (g *Generator) Maze(opts ...Option) (*Maze, error) {
	if !g.Done() {
		return nil, fmt.Errorf("maze: generation incomplete: %d of %d cells visited", g.visited, g.total)
	}

	return New(g.width, g.height, append(opts, WithBoard(g.board))...)
}
