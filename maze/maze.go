package maze

import (
	"fmt"

	"github.com/pathscout/pathscout/search"
)

// Maze is a grid of rooms with a fixed start and goal. The board is fixed
// for the lifetime of the maze; path-finding never mutates it.
type Maze struct {
	width, height int
	board         [][]Room
	start, goal   Point
}

// compile-time contract check
var _ search.Space[Point] = (*Maze)(nil)

// New constructs a width×height maze. Unless WithBoard supplies a board,
// the maze is generated with a seeded drunken-walk carving pass.
// Returns ErrBadDimensions or ErrOutOfBounds on invalid configuration.
func New(width, height int, opts ...Option) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	m := &Maze{
		width:  width,
		height: height,
		start:  Point{Row: 0, Col: 0},
		goal:   Point{Row: height - 1, Col: width - 1},
	}
	if o.start != nil {
		m.start = *o.start
	}
	if o.goal != nil {
		m.goal = *o.goal
	}
	if !m.InBounds(m.start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, m.start)
	}
	if !m.InBounds(m.goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrOutOfBounds, m.goal)
	}

	if o.board != nil {
		if len(o.board) != height {
			return nil, fmt.Errorf("%w: board has %d rows, want %d", ErrOutOfBounds, len(o.board), height)
		}
		for r, row := range o.board {
			if len(row) != width {
				return nil, fmt.Errorf("%w: board row %d has %d columns, want %d", ErrOutOfBounds, r, len(row), width)
			}
		}
		m.board = o.board
	} else {
		m.board = newBoard(width, height)
		carveBoard(m.board, rngFromSeed(o.seed))
	}

	return m, nil
}

// newBoard allocates a height×width grid with every wall up.
func newBoard(width, height int) [][]Room {
	board := make([][]Room, height)
	for r := range board {
		board[r] = make([]Room, width)
		for c := range board[r] {
			board[r][c] = newRoom()
		}
	}

	return board
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Goal returns the goal position.
func (m *Maze) Goal() Point { return m.goal }

// InBounds reports whether p lies within the grid.
func (m *Maze) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < m.height && p.Col >= 0 && p.Col < m.width
}

// Room returns a copy of the room at p. Mainly for rendering and tests.
func (m *Maze) Room(p Point) Room { return m.board[p.Row][p.Col] }

// Start returns the start position.
func (m *Maze) Start() Point { return m.start }

// IsGoal reports whether s is the goal position.
func (m *Maze) IsGoal(s Point) bool { return s == m.goal }

// Successors returns the neighboring points not blocked by a wall, in
// North, South, East, West order. Wall symmetry guarantees a returned
// neighbor is in bounds: boundary sides always keep their walls.
func (m *Maze) Successors(s Point) []Point {
	room := &m.board[s.Row][s.Col]
	out := make([]Point, 0, 4)
	for _, d := range directions {
		if !room.Wall(d) {
			out = append(out, s.move(d))
		}
	}

	return out
}
