// Package term defines the Term contract the LOLOG engine consumes and a
// small reference implementation of that contract: Edges, TwoStar, Triangle, NodeCov, and
// PreferentialAttachment.
//
// The full term library — the dozens of statistics a real LOLOG fit draws
// on (gwesp, degree distributions, attribute homophily, ...) — lives
// outside the engine; the five terms here exist only so sampler and model
// have something concrete to drive and test against, covering both
// documentary classifications:
//
//   - Edges and NodeCov are dyad-independent: each one's delta depends only
//     on the proposed dyad itself. TwoStar and Triangle are dyad-dependent:
//     their deltas depend on the edges around the proposed dyad.
//   - Edges, TwoStar, Triangle and NodeCov are order-independent: they never
//     consult the order argument.
//   - PreferentialAttachment is order-dependent: its delta
//     depends on how many of a dyad's endpoint's neighbors were already
//     "placed" earlier in the visitation order, not merely on the graph.
package term

import "github.com/duncan-clark/lolog/core"

// Term is the incremental-statistic contract the engine consumes.
//
// Initialize computes the term's value from scratch against g. Value
// reports the current statistic — after Initialize, exactly the statistic
// on g; after a DyadUpdate and before any Rollback, the statistic as if the
// proposed dyad were flipped.
//
// DyadUpdate proposes flipping dyad (u, v), given that order[0..i] is the
// committed visitation history to date (order-dependent terms read this;
// others ignore it). The engine computes the delta from g's *pre-toggle*
// state plus (u, v, order, i) — g itself is not mutated by DyadUpdate.
//
// At most one DyadUpdate may be outstanding: a Term implementation may
// assume that each DyadUpdate call either follows a prior Rollback or
// is the first call since Initialize, and that the prior proposal was,
// if neither rolled back nor proposed again, implicitly accepted by an
// actual toggle of the underlying graph. Reference
// implementations in this package fold a pending proposal into their
// baseline at the start of the next DyadUpdate call.
//
// Rollback undoes the single outstanding DyadUpdate, returning Value to
// what it reported before that call.
type Term interface {
	Initialize(g *core.Graph)
	Value() float64
	DyadUpdate(u, v int, order []int, i int)
	Rollback()
}
