// File: twostar.go
// Role: the two-star statistic, Σ_v C(deg(v),2) — dyad-dependent,
// order-independent, but (unlike Edges) needs a per-vertex degree cache to
// stay O(1) per proposal instead of rescanning the whole graph.
package term

import "github.com/duncan-clark/lolog/core"

// TwoStar counts 2-stars: pairs of edges sharing an endpoint, Σ_v C(deg(v),2).
type TwoStar struct {
	scratch
	g   *core.Graph
	deg []int

	pendingU, pendingV int
	pendingAdd         bool
}

var _ Term = (*TwoStar)(nil)

// Initialize scans every vertex's degree once and sums C(deg(v),2).
func (t *TwoStar) Initialize(g *core.Graph) {
	t.g = g
	t.deg = make([]int, g.Size())
	var total float64
	for v := 0; v < g.Size(); v++ {
		d := len(g.Neighbors(v))
		t.deg[v] = d
		total += float64(d*(d-1)) / 2
	}
	t.reset(total)
}

// Value reports the current (possibly proposed) two-star count.
func (t *TwoStar) Value() float64 { return t.value() }

// DyadUpdate proposes flipping dyad (u, v). Adding an edge raises the
// two-star count by deg(u)+deg(v) (each endpoint's pre-flip degree); removing
// lowers it by (deg(u)-1)+(deg(v)-1).
func (t *TwoStar) DyadUpdate(u, v int, order []int, i int) {
	t.settleDeg()

	var delta float64
	if t.g.HasEdge(u, v) {
		delta = -(float64(t.deg[u]-1) + float64(t.deg[v]-1))
		t.pendingAdd = false
	} else {
		delta = float64(t.deg[u]) + float64(t.deg[v])
		t.pendingAdd = true
	}
	t.pendingU, t.pendingV = u, v
	t.propose(delta)
}

// Rollback discards the last proposed flip; the degree cache is untouched
// since settleDeg only applies it once a proposal is accepted.
func (t *TwoStar) Rollback() { t.rollback() }

// settleDeg folds a pending proposal's degree effect into the cache, then
// folds the value delta into current via the shared scratch bookkeeping.
func (t *TwoStar) settleDeg() {
	if t.pending {
		if t.pendingAdd {
			t.deg[t.pendingU]++
			t.deg[t.pendingV]++
		} else {
			t.deg[t.pendingU]--
			t.deg[t.pendingV]--
		}
	}
	t.settle()
}
