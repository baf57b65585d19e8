// Package maze provides a procedurally generated grid maze implementing the
// search.Space contract, plus a variant that drives maze construction
// through the search engine itself.
//
// What
//
//   - Maze is a width×height grid of Rooms, each with four independent wall
//     flags. A state is a Point (row, col); moves are legal exactly when no
//     wall blocks the direction, and walls are kept symmetric: if a room has
//     no wall toward its neighbor, the neighbor has no wall back.
//   - New generates a maze with a randomized depth-first wall-carving walk
//     (an explicit-stack "drunken walk") from a random cell, unless
//     WithBoard supplies a pre-carved board.
//   - Start and goal default to the top-left and bottom-right corners and
//     can be moved with WithStart/WithGoal.
//   - Render draws the maze as text with an optional path overlay.
//   - Generator recasts generation as a search problem: successors carve
//     walls as a sanctioned side effect, and the goal is "every cell
//     visited". Feeding a Generator to search.BFS or search.DFS builds a
//     maze; Generator.Maze then wraps the carved board for solving.
//
// State identity
//
//	A Point carries only its grid position. Equality and map-key behavior
//	deliberately ignore which board the point belongs to: path-finding
//	assumes a single fixed board per search, and the generator mutates one
//	uniquely-owned board threaded through explicitly.
//
// Determinism
//
//	Generation is driven by a seeded math/rand source. The same seed and
//	dimensions produce the identical board; seed 0 selects a fixed default
//	seed so zero-value configuration stays reproducible.
//
// Complexity (W×H cells)
//
//   - New (with generation): O(W×H) time and memory
//   - Successors:            O(1)
//   - Render:                O(W×H)
//
// Errors
//
//   - ErrBadDimensions if width or height is < 1.
//   - ErrOutOfBounds   if a configured start/goal lies outside the grid, or
//     a supplied board does not match the dimensions.
package maze
