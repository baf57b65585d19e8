// Package maze type definitions: directions, rooms, points, sentinel errors,
// and construction options.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrBadDimensions indicates a width or height below 1.
	ErrBadDimensions = errors.New("maze: width and height must be at least 1")

	// ErrOutOfBounds indicates a start, goal, or board that does not fit
	// the grid dimensions.
	ErrOutOfBounds = errors.New("maze: position outside the grid")
)

// Direction identifies one of the four cardinal wall sides of a Room.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// directions lists all four directions in the order successor expansion
// examines them.
var directions = [4]Direction{North, South, East, West}

// Opposite returns the direction pointing back: North↔South, East↔West.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	default:
		return "west"
	}
}

// delta returns the row/column displacement of a one-cell move toward d.
// Rows grow southward, columns grow eastward.
func (d Direction) delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default:
		return 0, -1
	}
}

// Room is a single maze cell: four wall flags plus a visited flag consumed
// only during generation, never during path-finding.
type Room struct {
	walls   [4]bool
	visited bool
}

// newRoom returns a Room with all four walls up.
func newRoom() Room {
	return Room{walls: [4]bool{true, true, true, true}}
}

// Wall reports whether the wall toward d is present.
func (r *Room) Wall(d Direction) bool { return r.walls[d] }

// Point is a grid position and the comparable state type of maze searches.
// Equality is structural on the position only.
type Point struct {
	Row, Col int
}

// String renders the point as "(row,col)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// move returns the neighboring point one cell toward d.
func (p Point) move(d Direction) Point {
	dr, dc := d.delta()

	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Option configures Maze construction.
type Option func(*options)

type options struct {
	start, goal *Point
	seed        int64
	board       [][]Room
}

func defaultOptions() options {
	return options{}
}

// WithStart sets the start position. Default is the top-left corner (0,0).
func WithStart(p Point) Option {
	return func(o *options) {
		o.start = &p
	}
}

// WithGoal sets the goal position. Default is the bottom-right corner.
func WithGoal(p Point) Option {
	return func(o *options) {
		o.goal = &p
	}
}

// WithSeed sets the generation seed. Seed 0 (the default) selects a fixed
// default seed, keeping zero-value configuration deterministic.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithBoard supplies a pre-carved board instead of generating one. The
// board must match the maze dimensions; it is used as-is, not copied, so
// the caller hands over ownership.
func WithBoard(board [][]Room) Option {
	return func(o *options) {
		o.board = board
	}
}
