package maze

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pathscout/pathscout/search"
)

func TestNew_Errors(t *testing.T) {
	_, err := New(0, 5)
	require.ErrorIs(t, err, ErrBadDimensions)
	_, err = New(5, -1)
	require.ErrorIs(t, err, ErrBadDimensions)

	_, err = New(3, 3, WithStart(Point{Row: 3, Col: 0}))
	require.ErrorIs(t, err, ErrOutOfBounds)
	_, err = New(3, 3, WithGoal(Point{Row: 0, Col: -1}))
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = New(3, 3, WithBoard(newBoard(2, 2)))
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestNew_Defaults(t *testing.T) {
	m, err := New(4, 3)
	require.NoError(t, err)
	require.Equal(t, 4, m.Width())
	require.Equal(t, 3, m.Height())
	require.Equal(t, Point{Row: 0, Col: 0}, m.Start())
	require.Equal(t, Point{Row: 2, Col: 3}, m.Goal())
}

// TestWallSymmetry verifies the generation invariant: a missing wall always
// has a missing counterpart on the neighbor's side, and boundary sides keep
// their walls.
func TestWallSymmetry(t *testing.T) {
	for _, seed := range []int64{0, 1, 7, 42, 1234} {
		m, err := New(9, 7, WithSeed(seed))
		require.NoError(t, err)

		for r := 0; r < m.height; r++ {
			for c := 0; c < m.width; c++ {
				p := Point{Row: r, Col: c}
				for _, d := range directions {
					n := p.move(d)
					if !m.InBounds(n) {
						require.True(t, m.board[r][c].Wall(d),
							"seed %d: boundary side %v of %v must keep its wall", seed, d, p)
						continue
					}
					require.Equal(t,
						m.board[r][c].Wall(d),
						m.board[n.Row][n.Col].Wall(d.Opposite()),
						"seed %d: asymmetric wall between %v and %v", seed, p, n)
				}
			}
		}
	}
}

// TestFullyConnected verifies the carving walk reaches every cell: a flood
// fill over passable walls touches all width×height rooms.
func TestFullyConnected(t *testing.T) {
	for _, seed := range []int64{0, 3, 99} {
		m, err := New(12, 8, WithSeed(seed))
		require.NoError(t, err)

		reached := map[Point]bool{m.Start(): true}
		queue := []Point{m.Start()}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range m.Successors(cur) {
				if !reached[next] {
					reached[next] = true
					queue = append(queue, next)
				}
			}
		}
		require.Len(t, reached, 12*8, "seed %d: maze not fully connected", seed)
	}
}

func TestSuccessorsRespectWalls(t *testing.T) {
	m, err := New(6, 6, WithSeed(5))
	require.NoError(t, err)

	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			p := Point{Row: r, Col: c}
			succ := m.Successors(p)
			open := 0
			for _, d := range directions {
				if !m.board[r][c].Wall(d) {
					open++
					require.Contains(t, succ, p.move(d))
				}
			}
			require.Len(t, succ, open)
			require.NotContains(t, succ, p, "a room is never its own successor")
			for _, n := range succ {
				require.True(t, m.InBounds(n), "successor %v of %v out of bounds", n, p)
			}
		}
	}
}

// TestDeterministicSeed verifies the same seed reproduces the same board,
// and that seed 0 maps onto the fixed default seed.
func TestDeterministicSeed(t *testing.T) {
	a, err := New(10, 10, WithSeed(17))
	require.NoError(t, err)
	b, err := New(10, 10, WithSeed(17))
	require.NoError(t, err)
	require.Equal(t, a.board, b.board)

	zero, err := New(10, 10)
	require.NoError(t, err)
	def, err := New(10, 10, WithSeed(defaultSeed))
	require.NoError(t, err)
	require.Equal(t, def.board, zero.board)
}

// TestSolve1x1 covers the degenerate maze: start equals goal, path of one
// state, nothing expanded.
func TestSolve1x1(t *testing.T) {
	m, err := New(1, 1)
	require.NoError(t, err)

	res, err := search.BFS[Point](m)
	require.NoError(t, err)
	require.Equal(t, []Point{{Row: 0, Col: 0}}, res.Path)
	require.Equal(t, 1, res.Stats.PathLength)
	require.Equal(t, 0, res.Stats.StatesExpanded)
}

// TestSolve2x2 pins the Manhattan-distance bound: corner to corner in a
// 2×2 maze is always exactly 3 states.
func TestSolve2x2(t *testing.T) {
	for _, seed := range []int64{0, 1, 2, 3, 4, 5} {
		m, err := New(2, 2, WithSeed(seed))
		require.NoError(t, err)

		res, err := search.BFS[Point](m)
		require.NoError(t, err)
		require.Equal(t, 3, res.Stats.PathLength, "seed %d", seed)
	}
}

// TestSolve verifies both traversals return valid paths on generated mazes.
func TestSolve(t *testing.T) {
	for _, seed := range []int64{0, 11, 29} {
		m, err := New(8, 8, WithSeed(seed))
		require.NoError(t, err)

		for name, run := range map[string]func(search.Space[Point], ...search.Option[Point]) (*search.Result[Point], error){
			"bfs": search.BFS[Point], "dfs": search.DFS[Point],
		} {
			res, err := run(m)
			require.NoError(t, err, "%s seed %d", name, seed)
			requireValidPath(t, m, res.Path)
			require.Equal(t, len(res.Path), res.Stats.PathLength)
		}
	}
}

// TestCustomStartGoal verifies repositioned endpoints and position-only
// state identity.
func TestCustomStartGoal(t *testing.T) {
	m, err := New(5, 5,
		WithSeed(2),
		WithStart(Point{Row: 4, Col: 0}),
		WithGoal(Point{Row: 0, Col: 4}),
	)
	require.NoError(t, err)
	require.Equal(t, Point{Row: 4, Col: 0}, m.Start())
	require.True(t, m.IsGoal(Point{Row: 0, Col: 4}), "goal identity is positional")

	res, err := search.DFS[Point](m)
	require.NoError(t, err)
	requireValidPath(t, m, res.Path)
}

// requireValidPath asserts the shared path contract against a maze.
func requireValidPath(t *testing.T, m *Maze, path []Point) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, m.Start(), path[0])
	require.True(t, m.IsGoal(path[len(path)-1]))
	seen := make(map[Point]bool, len(path))
	for i, p := range path {
		require.False(t, seen[p], "state %v repeats", p)
		seen[p] = true
		if i > 0 {
			require.Contains(t, m.Successors(path[i-1]), p,
				"consecutive pair (%v, %v) not connected", path[i-1], p)
		}
	}
}
