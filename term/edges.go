// File: edges.go
// Role: the classic edge-count statistic — dyad-independent, order-independent.
package term

import "github.com/duncan-clark/lolog/core"

// Edges counts the number of present dyads.
type Edges struct {
	scratch
	g *core.Graph
}

var _ Term = (*Edges)(nil)

// Initialize computes the edge count from scratch.
func (t *Edges) Initialize(g *core.Graph) {
	t.g = g
	t.reset(float64(g.EdgeCount()))
}

// Value reports the current (possibly proposed) edge count.
func (t *Edges) Value() float64 { return t.value() }

// DyadUpdate proposes flipping dyad (u, v): +1 if currently absent, -1 if
// present. The order/i arguments are unused — Edges is order-independent.
func (t *Edges) DyadUpdate(u, v int, order []int, i int) {
	t.settle()
	if t.g.HasEdge(u, v) {
		t.propose(-1)
	} else {
		t.propose(1)
	}
}

// Rollback discards the last proposed flip.
func (t *Edges) Rollback() { t.rollback() }
