package network

import "sort"

// Graph is a weighted, undirected transit network.
// Vertices are keyed by the station's textual form ("Rajiv Chowk~BY").
//
// Edges are always stored in both directions with the same weight, and no
// vertex is adjacent to itself. Mutations referencing a missing vertex are
// silent no-ops. A Graph is not safe for concurrent mutation.
type Graph struct {
	// Name is the display name of the network, e.g. "Delhi Metro".
	Name string

	vertices map[string]*Vertex
}

// Vertex holds a station's adjacency: neighbor name → edge weight.
type Vertex struct {
	Name      string
	Neighbors map[string]int
}

// Neighbor is one entry of a vertex's adjacency.
type Neighbor struct {
	Name   string
	Weight int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex),
	}
}

// NumVertices returns the number of stations.
func (g *Graph) NumVertices() int {
	return len(g.vertices)
}

// ContainsVertex reports whether name is a station of the graph.
func (g *Graph) ContainsVertex(name string) bool {
	_, ok := g.vertices[name]
	return ok
}

// AddVertex inserts an isolated station. Adding an existing station is a
// no-op so its edges survive.
func (g *Graph) AddVertex(name string) {
	if _, ok := g.vertices[name]; ok {
		return
	}
	g.vertices[name] = &Vertex{
		Name:      name,
		Neighbors: make(map[string]int),
	}
}

// RemoveVertex deletes a station and every edge touching it.
func (g *Graph) RemoveVertex(name string) {
	v, ok := g.vertices[name]
	if !ok {
		return
	}
	for nb := range v.Neighbors {
		delete(g.vertices[nb].Neighbors, name)
	}
	delete(g.vertices, name)
}

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int {
	count := 0
	for _, v := range g.vertices {
		count += len(v.Neighbors)
	}
	return count / 2
}

// ContainsEdge reports whether a and b are directly connected.
func (g *Graph) ContainsEdge(a, b string) bool {
	_, ok := g.Weight(a, b)
	return ok
}

// Weight returns the weight of the edge between a and b.
func (g *Graph) Weight(a, b string) (int, bool) {
	va, ok := g.vertices[a]
	if !ok {
		return 0, false
	}
	if _, ok := g.vertices[b]; !ok {
		return 0, false
	}
	w, ok := va.Neighbors[b]
	return w, ok
}

// AddEdge connects a and b with the given weight.
// It does nothing if either station is missing, the edge already exists
// (the weight is not updated), a == b, or weight is not positive.
func (g *Graph) AddEdge(a, b string, weight int) {
	if a == b || weight <= 0 {
		return
	}
	va, ok := g.vertices[a]
	if !ok {
		return
	}
	vb, ok := g.vertices[b]
	if !ok {
		return
	}
	if _, exists := va.Neighbors[b]; exists {
		return
	}
	va.Neighbors[b] = weight
	vb.Neighbors[a] = weight
}

// RemoveEdge disconnects a and b. Missing stations or edges are ignored.
func (g *Graph) RemoveEdge(a, b string) {
	if !g.ContainsEdge(a, b) {
		return
	}
	delete(g.vertices[a].Neighbors, b)
	delete(g.vertices[b].Neighbors, a)
}

// Stations returns all station names in lexical order.
func (g *Graph) Stations() []string {
	names := make([]string, 0, len(g.vertices))
	for name := range g.vertices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Neighbors returns the adjacency of name ordered by neighbor name, or nil
// if the station does not exist.
func (g *Graph) Neighbors(name string) []Neighbor {
	v, ok := g.vertices[name]
	if !ok {
		return nil
	}
	out := make([]Neighbor, 0, len(v.Neighbors))
	for nb, w := range v.Neighbors {
		out = append(out, Neighbor{Name: nb, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Adjacency returns a sorted snapshot of every station with its neighbors,
// suitable for display.
func (g *Graph) Adjacency() []Vertex {
	out := make([]Vertex, 0, len(g.vertices))
	for _, name := range g.Stations() {
		v := g.vertices[name]
		cp := Vertex{Name: name, Neighbors: make(map[string]int, len(v.Neighbors))}
		for nb, w := range v.Neighbors {
			cp.Neighbors[nb] = w
		}
		out = append(out, cp)
	}
	return out
}
