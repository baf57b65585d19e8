package maze

import (
	"strings"

	"github.com/fatih/color"
)

// Render colors. Honors color.NoColor, so callers (and tests) can disable
// ANSI output globally.
var (
	pathMark  = color.New(color.FgRed, color.Bold)
	startMark = color.New(color.FgGreen, color.Bold)
	goalMark  = color.New(color.FgYellow, color.Bold)
)

// Render draws the maze as text, one line of walls above each row of rooms
// and a closing line at the bottom. Cells on path are marked "*", the start
// "S", and the goal "G", each colorized unless color output is disabled.
//
// A 2×2 maze whose only walls stand between the two top cells renders a
// solved run like:
//
//	+--+--+
//	|S |  |
//	+  +  +
//	|*  G |
//	+--+--+
func (m *Maze) Render(path []Point) string {
	onPath := make(map[Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var b strings.Builder
	for r := 0; r < m.height; r++ {
		// wall line above row r
		for c := 0; c < m.width; c++ {
			b.WriteByte('+')
			if m.board[r][c].Wall(North) {
				b.WriteString("--")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("+\n")

		// room line
		for c := 0; c < m.width; c++ {
			if m.board[r][c].Wall(West) {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			b.WriteString(m.cellMark(Point{Row: r, Col: c}, onPath))
		}
		// east boundary of the last room
		if m.board[r][m.width-1].Wall(East) {
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}

	// bottom boundary
	for c := 0; c < m.width; c++ {
		b.WriteByte('+')
		if m.board[m.height-1][c].Wall(South) {
			b.WriteString("--")
		} else {
			b.WriteString("  ")
		}
	}
	b.WriteString("+\n")

	return b.String()
}

// cellMark returns the two-character body of a cell, colorized when the
// cell is the start, the goal, or on the path.
func (m *Maze) cellMark(p Point, onPath map[Point]bool) string {
	switch {
	case p == m.start:
		return startMark.Sprint("S ")
	case p == m.goal:
		return goalMark.Sprint("G ")
	case onPath[p]:
		return pathMark.Sprint("* ")
	default:
		return "  "
	}
}
