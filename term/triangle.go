// File: triangle.go
// Role: the triangle-count statistic — dyad-dependent, order-independent.
package term

import "github.com/duncan-clark/lolog/core"

// Triangle counts closed triads: 3-cycles in the (undirected) graph.
type Triangle struct {
	scratch
	g *core.Graph
}

var _ Term = (*Triangle)(nil)

// Initialize counts triangles from scratch: for each vertex, count pairs of
// its neighbors that are themselves adjacent, then divide by 3 (each
// triangle is counted once at each of its three vertices).
func (t *Triangle) Initialize(g *core.Graph) {
	t.g = g
	var total float64
	for v := 0; v < g.Size(); v++ {
		neigh := g.Neighbors(v)
		for a := 0; a < len(neigh); a++ {
			for b := a + 1; b < len(neigh); b++ {
				if g.HasEdge(neigh[a], neigh[b]) {
					total++
				}
			}
		}
	}
	t.reset(total / 3)
}

// Value reports the current (possibly proposed) triangle count.
func (t *Triangle) Value() float64 { return t.value() }

// DyadUpdate proposes flipping dyad (u, v): the delta is ± the number of
// vertices currently adjacent to both u and v (each is a triangle gained or
// lost by the flip). order/i are unused — Triangle is order-independent.
func (t *Triangle) DyadUpdate(u, v int, order []int, i int) {
	t.settle()

	common := 0
	for _, w := range t.g.Neighbors(u) {
		if w != v && t.g.HasEdge(w, v) {
			common++
		}
	}

	if t.g.HasEdge(u, v) {
		t.propose(-float64(common))
	} else {
		t.propose(float64(common))
	}
}

// Rollback discards the last proposed flip.
func (t *Triangle) Rollback() { t.rollback() }
