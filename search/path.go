package search

// reconstructPath walks backward from goal via parent links until reaching
// the start state (the only discovered state with no parent entry), then
// reverses into start-to-goal order.
//
// Termination is guaranteed: a state's parent is always the state that
// caused its one and only discovery, and visited marking prevents
// re-discovery, so the parent chain is acyclic by construction.
func reconstructPath[S comparable](parent map[S]S, goal S) []S {
	// build reversed path
	path := []S{}
	for cur := goal; ; {
		path = append(path, cur)
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
