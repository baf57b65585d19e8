// Package search type definitions: sentinel errors, run statistics, results,
// and functional options shared by BFS and DFS.
package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrSpaceNil is returned if a nil state space is passed.
	ErrSpaceNil = errors.New("search: state space is nil")

	// ErrPathNotFound is returned when the frontier is exhausted without a
	// goal state being discovered: no goal is reachable from the start.
	ErrPathNotFound = errors.New("search: no path from start to goal")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when the WithMaxExpansions bound trips
	// before a goal is found.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Stats records the bookkeeping of a single traversal.
type Stats struct {
	// PathLength is the number of states in the returned path, including
	// both start and goal. At least 1 on success.
	PathLength int

	// StatesExpanded counts states popped from the frontier whose
	// successors were examined. The dequeued goal state is not counted.
	StatesExpanded int

	// MaxFrontierSize is the high-water mark of frontier occupancy,
	// sampled before every dequeue.
	MaxFrontierSize int
}

// Result is the outcome of a successful traversal: the start-to-goal path
// and the statistics accumulated while finding it.
type Result[S comparable] struct {
	// Path lists the states from start to goal inclusive. Every consecutive
	// pair is connected by the space's successor relation and no state
	// repeats.
	Path []S

	Stats Stats
}

// Option configures BFS/DFS behavior via functional arguments. An invalid
// Option (e.g. a negative expansion limit) is recorded internally and
// surfaced as ErrOptionViolation when the search is invoked.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks customizing a traversal.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines; checked once per iteration.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// that many states have been expanded. 0 disables the limit.
	MaxExpansions int

	// OnEnqueue is called when a state is discovered and placed on the
	// frontier. Receives the state and its discovery depth from the start.
	OnEnqueue func(state S, depth int)

	// OnDequeue is called when a state is popped from the frontier, before
	// the goal test.
	OnDequeue func(state S, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no expansion limit
//   - no-op hooks.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnEnqueue:     func(S, int) {},
		OnDequeue:     func(S, int) {},
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expanded states.
//
//	n > 0:  abort with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions[S comparable](n int) Option[S] {
	return func(o *Options[S]) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxExpansions = n
		}
	}
}

// WithOnEnqueue registers a callback to run when a state is discovered.
func WithOnEnqueue[S comparable](fn func(state S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a state is popped.
func WithOnDequeue[S comparable](fn func(state S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
