// File: types.go
// Role: Model's fields, its functional-options configuration, and the
// TermFactory type Clone relies on to rebuild term state.
package model

import (
	"github.com/duncan-clark/lolog/core"
	"github.com/duncan-clark/lolog/term"
)

// TermFactory returns a fresh slice of uninitialized terms, one per
// statistic the model tracks. Every call must return terms in the same
// order, since θ and statistic vectors are positional.
type TermFactory func() []term.Term

// Model holds a graph, the terms tracking its statistics, a parameter
// vector θ, and an optional partial vertex order.
type Model struct {
	graph        *core.Graph
	terms        []term.Term
	theta        []float64
	partialOrder []float64
	newTerms     TermFactory
}

// Option customizes a Model at construction time.
type Option func(*Model)

// WithThetas sets the initial parameter vector. Its length must match the
// term count; New returns ErrThetaLengthMismatch otherwise.
func WithThetas(theta []float64) Option {
	return func(m *Model) {
		m.theta = append([]float64(nil), theta...)
	}
}

// WithPartialOrder sets a partial vertex order: partialOrder[v] is v's
// partial-order key (ties allowed). Its length must match the graph's
// vertex count; New returns ErrPartialOrderLengthMismatch otherwise.
func WithPartialOrder(partialOrder []float64) Option {
	return func(m *Model) {
		m.partialOrder = append([]float64(nil), partialOrder...)
	}
}

// New builds a Model over graph, initializing a fresh set of terms from
// newTerms against it, and applies opts.
func New(graph *core.Graph, newTerms TermFactory, opts ...Option) (*Model, error) {
	m := &Model{graph: graph, newTerms: newTerms}
	for _, opt := range opts {
		opt(m)
	}

	m.terms = newTerms()
	for _, t := range m.terms {
		t.Initialize(graph)
	}

	if m.theta == nil {
		m.theta = make([]float64, len(m.terms))
	}
	if len(m.theta) != len(m.terms) {
		return nil, ErrThetaLengthMismatch
	}
	if m.partialOrder != nil && len(m.partialOrder) != graph.Size() {
		return nil, ErrPartialOrderLengthMismatch
	}

	return m, nil
}

// Graph returns the model's underlying graph.
func (m *Model) Graph() *core.Graph { return m.graph }

// PartialOrder returns the partial-order key vector, or nil if absent.
func (m *Model) PartialOrder() []float64 { return m.partialOrder }

// Thetas returns the current parameter vector.
func (m *Model) Thetas() []float64 { return m.theta }

// TermCount returns the number of terms (and thus the statistic vector's
// length).
func (m *Model) TermCount() int { return len(m.terms) }

// SetThetas replaces the parameter vector. Its length must already match
// the term count; callers that need to change term count must build a new
// Model.
func (m *Model) SetThetas(theta []float64) error {
	if len(theta) != len(m.terms) {
		return ErrThetaLengthMismatch
	}
	m.theta = append([]float64(nil), theta...)

	return nil
}
