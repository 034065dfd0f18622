// File: generator.go
// Role: produce a full vertex visitation order, either a uniform random
// permutation (no partial order given) or one respecting a partial order
// via rank-then-argsort.
package order

import "math/rand"

// GenerateOrder returns a vertex visitation order of length n.
//
// If partial is nil, the order is a uniform random permutation of 0..n-1
// (Fisher-Yates over [0..n-1]).
//
// Otherwise partial[v] is v's partial-order key (ties allowed); the order is
// derived by ranking the keys with random tie-breaking (Rank) and then
// placing each vertex at the position its rank implies (argsort). Since Rank
// already returns a bijection onto 1..n, the argsort is a direct inverse:
// vertex v with rank r is placed at position r-1.
func GenerateOrder(n int, partial []float64, rng *rand.Rand) []int {
	if partial == nil {
		return permRange(n, rng)
	}

	ranks := Rank(partial, rng)
	vertOrder := make([]int, n)
	for v, r := range ranks {
		vertOrder[r-1] = v
	}

	return vertOrder
}

// Invert returns the rank array for a visitation order: rank[order[j]] = j.
// This is the __order__ attribute value stamped onto generated graphs, and
// the lookup sampler.runEdgePermutation uses to find a vertex's position in
// vertOrder without a linear scan per dyad.
func Invert(vertOrder []int) []int {
	rank := make([]int, len(vertOrder))
	for j, v := range vertOrder {
		rank[v] = j
	}

	return rank
}

// ReshuffleSuffix re-shuffles vertOrder[from:] in place, leaving the
// committed prefix vertOrder[:from] untouched. This is the per-step partial
// re-shuffle node-sequential generation performs before each vertex is
// visited.
func ReshuffleSuffix(vertOrder []int, from int, rng *rand.Rand) {
	shuffleSuffix(vertOrder, from, rng)
}
