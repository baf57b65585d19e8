package search

// item pairs a state with its discovery depth (edges from the start).
type item[S comparable] struct {
	state S
	depth int
}

// frontier is the ordered collection of discovered-but-unexpanded states.
// The pop discipline is the only difference between BFS and DFS.
type frontier[S comparable] interface {
	push(it item[S])
	pop() item[S]
	size() int
}

// fifoFrontier pops the oldest item first (queue). Used by BFS.
type fifoFrontier[S comparable] struct {
	items []item[S]
}

func (f *fifoFrontier[S]) push(it item[S]) { f.items = append(f.items, it) }

func (f *fifoFrontier[S]) pop() item[S] {
	it := f.items[0]
	f.items = f.items[1:]

	return it
}

func (f *fifoFrontier[S]) size() int { return len(f.items) }

// lifoFrontier pops the newest item first (stack). Used by DFS.
type lifoFrontier[S comparable] struct {
	items []item[S]
}

func (f *lifoFrontier[S]) push(it item[S]) { f.items = append(f.items, it) }

func (f *lifoFrontier[S]) pop() item[S] {
	last := len(f.items) - 1
	it := f.items[last]
	f.items = f.items[:last]

	return it
}

func (f *lifoFrontier[S]) size() int { return len(f.items) }
