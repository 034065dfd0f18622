// File: clone.go
// Role: Model.Clone and the related empty-graph constructor the sampler
// uses to build noTieModel from observedModel.
package model

// Clone performs a deep copy: a cloned graph, a fresh set of terms
// initialized against it (via the same TermFactory), and copies of θ and
// the partial order.
func (m *Model) Clone() *Model {
	g := m.graph.Clone()
	terms := m.newTerms()
	for _, t := range terms {
		t.Initialize(g)
	}

	clone := &Model{
		graph:    g,
		terms:    terms,
		theta:    append([]float64(nil), m.theta...),
		newTerms: m.newTerms,
	}
	if m.partialOrder != nil {
		clone.partialOrder = append([]float64(nil), m.partialOrder...)
	}

	return clone
}

// EmptyClone returns a Model over an empty graph of the same size and
// directedness as m's, with fresh terms, the same θ and partial order. This
// is how the sampler derives noTieModel from observedModel.
func (m *Model) EmptyClone() *Model {
	g := m.graph.EmptyGraph()
	terms := m.newTerms()
	for _, t := range terms {
		t.Initialize(g)
	}

	clone := &Model{
		graph:    g,
		terms:    terms,
		theta:    append([]float64(nil), m.theta...),
		newTerms: m.newTerms,
	}
	if m.partialOrder != nil {
		clone.partialOrder = append([]float64(nil), m.partialOrder...)
	}

	return clone
}
