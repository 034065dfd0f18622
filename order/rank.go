// File: rank.go
// Role: 1-based ranks of a key vector, ties broken uniformly at random.
package order

import "math/rand"

// Rank returns 1-based ranks of keys, smallest key first. Ties (equal keys)
// are broken uniformly at random rather than by stable input position, so
// repeated calls with the same keys but different rng state may assign
// different ranks among tied entries.
func Rank(keys []float64, rng *rand.Rand) []int {
	n := len(keys)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	// Shuffle first so that a stable sort on keys alone breaks ties in
	// random relative order, rather than in original-index order.
	shuffleIntsInPlace(idx, rng)
	stableSortByKey(idx, keys)

	ranks := make([]int, n)
	for position, original := range idx {
		ranks[original] = position + 1
	}

	return ranks
}

// stableSortByKey sorts idx in place by keys[idx[i]], ascending, preserving
// the relative order of entries with equal keys (insertion sort is adequate:
// idx is pre-shuffled and n is the vertex count, not a hot-loop size).
func stableSortByKey(idx []int, keys []float64) {
	for i := 1; i < len(idx); i++ {
		v := idx[i]
		j := i - 1
		for j >= 0 && keys[idx[j]] > keys[v] {
			idx[j+1] = idx[j]
			j--
		}
		idx[j+1] = v
	}
}
