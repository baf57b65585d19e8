// Package digraph adapts a fixed adjacency matrix to the search.Space
// contract, so a directed graph given as a square matrix of edge weights can
// be traversed by BFS/DFS.
//
// What
//
//   - DirectedGraph wraps an n×n [][]float64 where NoEdge (+Inf) marks an
//     absent edge and any finite value is a present edge's weight.
//   - A state is the integer index of a vertex; Start is a configured index
//     (0 by default) and IsGoal tests membership in a configured goal set.
//   - Successors scans the state's matrix row and returns the column
//     indices holding a present edge, in ascending order.
//   - Weights are carried but never consumed by unit-cost traversal;
//     WeightedSuccessors exposes them faithfully for weighted extensions.
//
// Why
//
//   - The simplest concrete state space: handy for exact-value tests of the
//     engine and for driving small scenario graphs from the CLI.
//
// Complexity (n = number of vertices)
//
//   - New:                O(n²) time and memory (deep copy)
//   - Successors:         O(n) per call
//   - Start/IsGoal:       O(1)
//
// Errors
//
//   - ErrEmptyMatrix   if the matrix has no rows.
//   - ErrNonSquare     if any row length differs from the row count.
//   - ErrBadWeight     if a cell is NaN or -Inf (the numeric policy allows
//     finite weights and +Inf for "no edge" only).
//   - ErrIndexRange    if the start or a goal index is out of range.
package digraph
