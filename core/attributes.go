// File: attributes.go
// Role: named, vector-valued per-vertex attribute storage. Discrete
// covariates (e.g. the nodal values a term.NodeCov
// reads) and the generator's own OrderAttrName both live here, addressed by
// name rather than given dedicated fields.
package core

// SetDiscreteAttr attaches a named vector-valued attribute to the graph's
// vertices: values[v] is the attribute's value at vertex v. len(values) must
// equal Size(); otherwise ErrAttrLengthMismatch is returned. The graph keeps
// its own copy of values.
//
// Complexity: O(n).
func (g *Graph) SetDiscreteAttr(name string, values []float64) error {
	if len(values) != g.n {
		return ErrAttrLengthMismatch
	}
	cp := make([]float64, g.n)
	copy(cp, values)
	g.attrs[name] = cp

	return nil
}

// DiscreteAttr returns the named attribute's value vector and true, or
// (nil, false) if no attribute with that name has been set.
//
// Complexity: O(1).
func (g *Graph) DiscreteAttr(name string) ([]float64, bool) {
	values, ok := g.attrs[name]

	return values, ok
}

// AttrAt returns the named attribute's value at vertex v, or
// ErrAttrNotFound / ErrVertexOutOfRange.
//
// Complexity: O(1).
func (g *Graph) AttrAt(name string, v int) (float64, error) {
	if !g.inRange(v) {
		return 0, ErrVertexOutOfRange
	}
	values, ok := g.attrs[name]
	if !ok {
		return 0, ErrAttrNotFound
	}

	return values[v], nil
}
