// Maze generation: a randomized depth-first wall-carving walk ("drunken
// walk") over a uniquely-owned board. The walk runs on an explicit stack,
// so the board threaded through is the only mutable state involved.
package maze

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffledDirections returns the four directions in random order.
func shuffledDirections(rng *rand.Rand) [4]Direction {
	dirs := directions
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	return dirs
}

// carve removes the wall between p and its neighbor toward d, on both
// sides. This is the only place walls come down, which is what keeps the
// symmetry invariant: a missing wall always has a missing counterpart.
func carve(board [][]Room, p Point, d Direction) {
	n := p.move(d)
	board[p.Row][p.Col].walls[d] = false
	board[n.Row][n.Col].walls[d.Opposite()] = false
}

// walkFrame is one level of the explicit carving stack: a cell and its
// remaining shuffled directions.
type walkFrame struct {
	p    Point
	dirs [4]Direction
	next int
}

// carveBoard carves a maze into board, starting the walk from a random
// cell. Every cell the walk reaches has exactly one carved path back to the
// start at the moment it is first entered, so the result is a perfect maze;
// cells the walk cannot reach (impossible on a rectangular board) would
// retain all walls.
func carveBoard(board [][]Room, rng *rand.Rand) {
	height, width := len(board), len(board[0])
	start := Point{Row: rng.Intn(height), Col: rng.Intn(width)}
	board[start.Row][start.Col].visited = true

	stack := []walkFrame{{p: start, dirs: shuffledDirections(rng)}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		n := top.p.move(d)
		if n.Row < 0 || n.Row >= height || n.Col < 0 || n.Col >= width {
			continue
		}
		if board[n.Row][n.Col].visited {
			continue
		}

		carve(board, top.p, d)
		board[n.Row][n.Col].visited = true
		stack = append(stack, walkFrame{p: n, dirs: shuffledDirections(rng)})
	}
}
