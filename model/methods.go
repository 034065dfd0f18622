// File: methods.go
// Role: the per-dyad operations the sampler drives — statistics, log
// likelihood, proposing/rolling back a dyad flip, and committing an accepted
// proposal by toggling the underlying graph.
package model

import "gonum.org/v1/gonum/floats"

// Statistics returns the current statistic vector, one entry per term, in
// term order.
func (m *Model) Statistics() []float64 {
	stats := make([]float64, len(m.terms))
	for k, t := range m.terms {
		stats[k] = t.Value()
	}

	return stats
}

// LogLik returns θ·statistics().
func (m *Model) LogLik() float64 {
	return floats.Dot(m.theta, m.Statistics())
}

// DyadUpdate proposes flipping dyad (u, v) across every term, given that
// vertOrder[0..i] is the committed visitation history to date. It does not
// touch the graph: the caller toggles the graph itself via Commit once it
// decides to keep the proposal (term deltas must be computed against the
// pre-toggle graph, per the Term contract).
func (m *Model) DyadUpdate(u, v int, vertOrder []int, i int) {
	for _, t := range m.terms {
		t.DyadUpdate(u, v, vertOrder, i)
	}
}

// Rollback discards the last proposed flip across every term.
func (m *Model) Rollback() {
	for _, t := range m.terms {
		t.Rollback()
	}
}

// Commit toggles dyad (u, v) in the underlying graph, finalizing a proposal
// the caller decided to keep. Terms observe the new graph state on their
// next DyadUpdate call (their own pending proposal is folded in first via
// the implicit-commit contract each term implements).
func (m *Model) Commit(u, v int) error {
	_, err := m.graph.Toggle(u, v)

	return err
}
