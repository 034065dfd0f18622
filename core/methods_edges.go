// File: methods_edges.go
// Role: Dyad queries and the single mutation primitive, Toggle.
//
// Toggle is its own inverse: calling it twice on the same dyad restores the
// prior edge set exactly. The sampler does not use this for rollback: it
// rolls back through the terms and toggles a dyad only once it has decided to
// commit it, so Toggle is called once per accepted dyad per direction.
package core

// HasEdge reports whether the dyad (u, v) is present. For undirected graphs
// HasEdge(u, v) == HasEdge(v, u); for directed graphs only the (u, v)
// orientation is consulted.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Toggle flips the presence of dyad (u, v): adds it if absent, removes it if
// present. Returns the edge's new state (true == now present) and an error
// if u or v is out of range or u == v (self-loops are never allowed).
//
// For undirected graphs the mirror entry in adj[v][u] is kept in sync in the
// same call, so HasEdge stays symmetric.
//
// Complexity: O(1).
func (g *Graph) Toggle(u, v int) (bool, error) {
	if !g.inRange(u) || !g.inRange(v) {
		return false, ErrVertexOutOfRange
	}
	if u == v {
		return false, ErrSelfLoop
	}

	if _, present := g.adj[u][v]; present {
		delete(g.adj[u], v)
		if !g.directed {
			delete(g.adj[v], u)
		}

		return false, nil
	}

	g.adj[u][v] = struct{}{}
	if !g.directed {
		g.adj[v][u] = struct{}{}
	}

	return true, nil
}

// Neighbors returns v's neighbors: out-neighbors for directed graphs, all
// incident neighbors for undirected ones. The returned slice is a fresh
// copy safe for the caller to retain; order is unspecified.
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}
	out := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		out = append(out, u)
	}

	return out
}

// EdgeList returns every present dyad as a (from, to) pair. Undirected edges
// are reported once, with from < to. Order is unspecified.
//
// Complexity: O(n + m) where m is the number of present dyads.
func (g *Graph) EdgeList() [][2]int {
	var out [][2]int
	for u := 0; u < g.n; u++ {
		for v := range g.adj[u] {
			if g.directed || u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// EdgeCount returns the number of present dyads (same convention as
// EdgeList: undirected edges counted once).
//
// Complexity: O(n + m).
func (g *Graph) EdgeCount() int { return len(g.EdgeList()) }
