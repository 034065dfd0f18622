// File: preferential_attachment.go
// Role: the order-dependent reference term the GLOSSARY names as the
// motivating example for why Term.DyadUpdate is given order[0..i]: its
// delta depends on how many of a dyad endpoint's neighbors were already
// "placed" earlier in the visitation order, not merely on the graph.
//
// Equivalence note: the formula below is an exact match between incremental
// (DyadUpdate-driven) and from-scratch (Initialize) computation when the
// graph was produced by node-sequential generation. Under edge-permutation
// generation, a
// dyad between two low-rank vertices can be decided arbitrarily late in
// candidate-list order, after a higher-rank vertex's proposal already saw a
// smaller placed-degree than the dyad's final contribution; Initialize
// necessarily reconstructs from the final graph only, so it is a
// best-effort approximation (not a bug) in that mode. The identity
// Tk.value(G_generated) == stats[k] + emptyNetworkStats[k] therefore holds
// strictly for order-independent terms and for order-dependent terms under
// sequential generation only.
package term

import (
	"math"

	"github.com/duncan-clark/lolog/core"
)

// PreferentialAttachment sums, over every edge, log(1 + placedDegree) of the
// edge's earlier-placed endpoint, where placedDegree counts that endpoint's
// neighbors that were placed no later than the edge's later endpoint.
type PreferentialAttachment struct {
	scratch
	g    *core.Graph
	rank []int // rank[v] = v's position in the visitation order
}

var _ Term = (*PreferentialAttachment)(nil)

// Initialize reconstructs the statistic from g's own __order__ attribute if
// present (core.OrderAttrName), falling back to the identity order
// (rank[v] == v) when g carries none — e.g. for a user-supplied observed
// graph that was never generated by sampler.Sampler.
func (t *PreferentialAttachment) Initialize(g *core.Graph) {
	t.g = g
	t.rank = ranksFromAttr(g)

	var total float64
	for _, e := range g.EdgeList() {
		a, b := e[0], e[1]
		alter, vertex := a, b
		if t.rank[alter] > t.rank[vertex] {
			alter, vertex = vertex, alter
		}
		total += math.Log1p(float64(t.placedDegree(alter, t.rank[vertex], vertex)))
	}
	t.reset(total)
}

// Value reports the current (possibly proposed) statistic.
func (t *PreferentialAttachment) Value() float64 { return t.value() }

// DyadUpdate proposes flipping dyad (u, v), treating v as the "alter" per
// the sampler's calling convention (dyadUpdate(vertex, alter, order, i)).
// The delta is ± log(1 + placedDegree(alter)), where placedDegree counts
// alter's current neighbors ranked no later than i within order.
func (t *PreferentialAttachment) DyadUpdate(u, v int, order []int, i int) {
	t.settle()
	t.rank = ranksFromOrder(order, t.g.Size())

	d := math.Log1p(float64(t.placedDegree(v, i, u)))
	if t.g.HasEdge(u, v) {
		t.propose(-d)
	} else {
		t.propose(d)
	}
}

// Rollback discards the last proposed flip.
func (t *PreferentialAttachment) Rollback() { t.rollback() }

// placedDegree counts alter's current graph-neighbors whose rank is <= atRank,
// excluding exclude. exclude is always the dyad's other endpoint: DyadUpdate's
// caller hasn't flipped the dyad yet, so alter's live neighbor set naturally
// excludes it, but Initialize reconstructs from a graph where that very edge
// already exists, so it must exclude it explicitly to match.
func (t *PreferentialAttachment) placedDegree(alter, atRank, exclude int) int {
	count := 0
	for _, w := range t.g.Neighbors(alter) {
		if w != exclude && t.rank[w] <= atRank {
			count++
		}
	}

	return count
}

// ranksFromAttr builds a rank array from g's __order__ attribute, or the
// identity permutation if that attribute was never set.
func ranksFromAttr(g *core.Graph) []int {
	n := g.Size()
	rank := make([]int, n)
	values, ok := g.DiscreteAttr(core.OrderAttrName)
	if !ok {
		for v := 0; v < n; v++ {
			rank[v] = v
		}

		return rank
	}
	for v := 0; v < n; v++ {
		rank[v] = int(values[v])
	}

	return rank
}

// ranksFromOrder inverts a visitation-order permutation into a rank array:
// rank[order[j]] = j.
func ranksFromOrder(order []int, n int) []int {
	rank := make([]int, n)
	for j, v := range order {
		rank[v] = j
	}

	return rank
}
