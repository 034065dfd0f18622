// File: nodecov.go
// Role: the nodal-covariate statistic, Σ_{(u,v)∈E} (x[u]+x[v]) — dyad
// independent, order-independent; reads its covariate from a named vertex
// attribute set via core.Graph.SetDiscreteAttr.
package term

import "github.com/duncan-clark/lolog/core"

// NodeCov sums a named covariate over every edge's endpoints.
type NodeCov struct {
	scratch
	attr   string
	g      *core.Graph
	values []float64
}

var _ Term = (*NodeCov)(nil)

// NewNodeCov returns a NodeCov term that reads the covariate stored under
// attr (see core.Graph.SetDiscreteAttr). If a graph passed to Initialize has
// no such attribute, the covariate is treated as all zeros.
func NewNodeCov(attr string) *NodeCov {
	return &NodeCov{attr: attr}
}

// Initialize sums the covariate over every present edge's endpoints.
func (t *NodeCov) Initialize(g *core.Graph) {
	t.g = g
	values, ok := g.DiscreteAttr(t.attr)
	if !ok {
		values = make([]float64, g.Size())
	}
	t.values = values

	var total float64
	for _, e := range g.EdgeList() {
		total += values[e[0]] + values[e[1]]
	}
	t.reset(total)
}

// Value reports the current (possibly proposed) covariate sum.
func (t *NodeCov) Value() float64 { return t.value() }

// DyadUpdate proposes flipping dyad (u, v): the delta is ± (x[u]+x[v]).
func (t *NodeCov) DyadUpdate(u, v int, order []int, i int) {
	t.settle()

	d := t.values[u] + t.values[v]
	if t.g.HasEdge(u, v) {
		t.propose(-d)
	} else {
		t.propose(d)
	}
}

// Rollback discards the last proposed flip.
func (t *NodeCov) Rollback() { t.rollback() }
