// Package core provides the mutable graph type the LOLOG engine simulates
// over: a fixed-size, simple (no self-loops, no multi-edges) graph on the
// integer vertex set {0, ..., n-1}, directed or undirected, with O(1)
// dyad queries and O(deg) mutation.
//
// Unlike a general-purpose graph library, core.Graph's vertex set never
// grows or shrinks after construction — the engine visits a fixed set of
// dyads and never introduces new vertices mid-simulation. That fixed size
// lets
// Toggle/HasEdge be plain adjacency-set operations with no locking: each
// simulation owns one Graph exclusively, and the hot loop (driven by
// sampler.Sampler) never shares it across goroutines.
//
// Vertex attributes are named, vector-valued data shared by all vertices —
// one float64 per vertex — attached with SetDiscreteAttr and read back with
// DiscreteAttr. The reserved name "__order__" carries the rank of each
// vertex in the order it was visited during a sequential generation.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, Size()).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrSelfLoop indicates an operation attempted a dyad (v, v).
	ErrSelfLoop = errors.New("core: self-loops are not allowed")

	// ErrAttrLengthMismatch indicates a vertex attribute vector whose length
	// does not equal the graph's vertex count.
	ErrAttrLengthMismatch = errors.New("core: attribute length does not match vertex count")

	// ErrAttrNotFound indicates a lookup for an attribute name that was
	// never set via SetDiscreteAttr.
	ErrAttrNotFound = errors.New("core: attribute not found")
)

// OrderAttrName is the reserved vertex-attribute name the engine stamps on a
// generated network: OrderAttrName[v] is v's rank in the visitation order.
const OrderAttrName = "__order__"
