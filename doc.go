// Package pathscout is an uninformed graph-search toolkit: it explores
// abstract state spaces defined by a start state, a goal predicate, and a
// successor relation, and finds paths with BFS and DFS.
//
// The engine never sees the problem behind the contract, so the same two
// traversals solve unrelated instances — a weighted directed graph given as
// an adjacency matrix, and a procedurally generated grid maze — unchanged.
//
// Everything is organized under three subpackages and a demo binary:
//
//	search/  — the core: Space contract, BFS, DFS, path reconstruction, stats
//	digraph/ — adjacency-matrix directed graphs as state spaces
//	maze/    — grid mazes: generation, solving, rendering, and a generator
//	           that is itself a search problem
//	cmd/pathscout/ — command-line demonstration harness
//
// Quick example:
//
//	m, _ := maze.New(20, 12, maze.WithSeed(7))
//	res, err := search.BFS[maze.Point](m)
//	if err != nil {
//	    // errors.Is(err, search.ErrPathNotFound) ⇒ no route exists
//	}
//	fmt.Println(m.Render(res.Path))
//
// BFS returns fewest-edges shortest paths; DFS returns some valid path.
// Neither consumes edge weights; weighted shortest-path search is out of
// scope.
package pathscout
