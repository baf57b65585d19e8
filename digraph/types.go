// Package digraph type definitions: sentinel errors and construction options.
package digraph

import (
	"errors"
	"math"
)

// NoEdge marks an absent edge in an adjacency matrix cell. +Inf follows the
// usual adjacency-matrix policy: finite values are weights, +Inf is "no
// edge", NaN and -Inf are rejected.
var NoEdge = math.Inf(1)

// Sentinel errors for DirectedGraph construction.
var (
	// ErrEmptyMatrix indicates the input matrix has no rows.
	ErrEmptyMatrix = errors.New("digraph: matrix must have at least one row")

	// ErrNonSquare indicates a row whose length differs from the row count.
	ErrNonSquare = errors.New("digraph: matrix must be square")

	// ErrBadWeight indicates a NaN or -Inf cell.
	ErrBadWeight = errors.New("digraph: edge weight must be finite or NoEdge")

	// ErrIndexRange indicates a start or goal index outside [0, n).
	ErrIndexRange = errors.New("digraph: vertex index out of range")
)

// Option configures DirectedGraph construction.
type Option func(*options)

type options struct {
	start int
}

func defaultOptions() options {
	return options{start: 0}
}

// WithStart sets the designated start vertex. Default is 0.
func WithStart(i int) Option {
	return func(o *options) {
		o.start = i
	}
}
