package network

// HasPath reports whether b can be reached from a.
//
// The walk is a depth-first search over an explicit stack. A vertex that is
// directly adjacent to b ends the search immediately; otherwise it is marked
// visited before its unvisited neighbors are pushed. HasPath(a, a) is true
// only when a has at least one neighbor.
func (g *Graph) HasPath(a, b string) bool {
	if !g.ContainsVertex(a) || !g.ContainsVertex(b) {
		return false
	}

	visited := make(map[string]bool, len(g.vertices))
	stack := []string{a}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			continue
		}
		if g.ContainsEdge(u, b) {
			return true
		}
		visited[u] = true

		// Push in reverse so the lexically first neighbor is explored first.
		nbs := g.Neighbors(u)
		for i := len(nbs) - 1; i >= 0; i-- {
			if !visited[nbs[i].Name] {
				stack = append(stack, nbs[i].Name)
			}
		}
	}
	return false
}
