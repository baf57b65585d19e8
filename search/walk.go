package search

import "fmt"

// walker encapsulates the mutable state of one traversal. All structures are
// created fresh per invocation and discarded on return; nothing persists
// across calls.
type walker[S comparable] struct {
	space   Space[S]
	opts    Options[S]
	front   frontier[S]
	visited map[S]bool
	parent  map[S]S
	stats   Stats
}

// run drives a traversal over sp using the supplied frontier discipline.
// BFS and DFS differ only in the frontier they hand in.
func run[S comparable](sp Space[S], front frontier[S], opts []Option[S]) (*Result[S], error) {
	// 1. Validate input space
	if sp == nil {
		return nil, ErrSpaceNil
	}

	// 2. Build options and catch any invalid ones immediately
	o := DefaultOptions[S]()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		space:   sp,
		opts:    o,
		front:   front,
		visited: make(map[S]bool),
		parent:  make(map[S]S),
	}

	// 3. Seed the frontier with the start state (no parent entry)
	w.discover(sp.Start(), 0)
	w.stats.MaxFrontierSize = 1

	// 4. Main loop
	return w.loop()
}

// discover marks s visited, invokes OnEnqueue, and places s on the frontier.
// Marking happens here — at discovery, not expansion — so a state can enter
// the frontier at most once.
func (w *walker[S]) discover(s S, depth int) {
	w.visited[s] = true
	w.opts.OnEnqueue(s, depth)
	w.front.push(item[S]{state: s, depth: depth})
}

// loop processes the frontier until a goal is dequeued, the frontier
// empties, the expansion limit trips, or the context is cancelled.
func (w *walker[S]) loop() (*Result[S], error) {
	var it item[S]
	var next S
	for w.front.size() > 0 {
		// cancellation check (once per iteration)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		// frontier high-water mark, counting the state about to be popped
		if n := w.front.size(); n > w.stats.MaxFrontierSize {
			w.stats.MaxFrontierSize = n
		}

		it = w.front.pop()
		w.opts.OnDequeue(it.state, it.depth)

		// goal test at dequeue: the goal itself is never expanded
		if w.space.IsGoal(it.state) {
			path := reconstructPath(w.parent, it.state)
			w.stats.PathLength = len(path)

			return &Result[S]{Path: path, Stats: w.stats}, nil
		}

		if w.opts.MaxExpansions > 0 && w.stats.StatesExpanded >= w.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, w.stats.StatesExpanded)
		}
		w.stats.StatesExpanded++

		for _, next = range w.space.Successors(it.state) {
			if w.visited[next] {
				continue
			}
			w.parent[next] = it.state
			w.discover(next, it.depth+1)
		}
	}

	return nil, ErrPathNotFound
}
