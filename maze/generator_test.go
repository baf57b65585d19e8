package maze

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pathscout/pathscout/search"
)

func TestNewGenerator_Errors(t *testing.T) {
	_, err := NewGenerator(0, 4, 1)
	require.ErrorIs(t, err, ErrBadDimensions)
	_, err = NewGenerator(4, 0, 1)
	require.ErrorIs(t, err, ErrBadDimensions)
}

// TestGenerator_SingleCell: a 1×1 board is fully generated at construction,
// so the start state is immediately a goal.
func TestGenerator_SingleCell(t *testing.T) {
	gen, err := NewGenerator(1, 1, 1)
	require.NoError(t, err)
	require.True(t, gen.Done())

	res, err := search.BFS[Point](gen)
	require.NoError(t, err)
	require.Equal(t, []Point{gen.Start()}, res.Path)
	require.Equal(t, 0, res.Stats.StatesExpanded)
}

// TestGenerator_MazeBeforeDone: the carved board is not handed over until
// generation completes.
func TestGenerator_MazeBeforeDone(t *testing.T) {
	gen, err := NewGenerator(4, 4, 1)
	require.NoError(t, err)
	require.False(t, gen.Done())

	_, err = gen.Maze()
	require.Error(t, err)
}

// TestGenerator_BuildsSolvableMaze drives generation through both
// traversals and verifies the carved board is a complete, symmetric,
// solvable maze.
func TestGenerator_BuildsSolvableMaze(t *testing.T) {
	for name, run := range map[string]func(search.Space[Point], ...search.Option[Point]) (*search.Result[Point], error){
		"bfs": search.BFS[Point], "dfs": search.DFS[Point],
	} {
		for _, seed := range []int64{1, 8, 23} {
			gen, err := NewGenerator(7, 5, seed)
			require.NoError(t, err)

			genRes, err := run(gen, search.WithMaxExpansions[Point](7*5))
			require.NoError(t, err, "%s seed %d", name, seed)
			require.True(t, gen.Done(), "%s seed %d: cells left unvisited", name, seed)
			// every expansion dequeues a distinct cell, and the final goal
			// dequeue is not an expansion
			require.Less(t, genRes.Stats.StatesExpanded, 7*5)

			m, err := gen.Maze()
			require.NoError(t, err)

			// symmetry survives search-driven carving
			for r := 0; r < m.height; r++ {
				for c := 0; c < m.width; c++ {
					p := Point{Row: r, Col: c}
					for _, d := range directions {
						n := p.move(d)
						if !m.InBounds(n) {
							require.True(t, m.board[r][c].Wall(d))
							continue
						}
						require.Equal(t,
							m.board[r][c].Wall(d),
							m.board[n.Row][n.Col].Wall(d.Opposite()))
					}
				}
			}

			res, err := search.BFS[Point](m)
			require.NoError(t, err, "%s seed %d: generated maze unsolvable", name, seed)
			requireValidPath(t, m, res.Path)
		}
	}
}

// TestGenerator_PathIsCarveTrail: the path returned by generation search is
// itself a connected trail through the carved maze.
func TestGenerator_PathIsCarveTrail(t *testing.T) {
	gen, err := NewGenerator(6, 6, 3)
	require.NoError(t, err)

	res, err := search.DFS[Point](gen)
	require.NoError(t, err)

	m, err := gen.Maze()
	require.NoError(t, err)
	for i := 1; i < len(res.Path); i++ {
		require.Contains(t, m.Successors(res.Path[i-1]), res.Path[i],
			"carve trail broken between %v and %v", res.Path[i-1], res.Path[i])
	}
}
