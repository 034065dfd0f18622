// File: truncation.go
// Role: the plain (non-seeded) candidate dyad list for unconstrained/
// truncated generation — floor(e*truncRate) dyads drawn by rejection
// sampling two distinct uniform vertices — as distinct from the variational
// frame producer's observed-edge-seeded variant in variational.go.
package sampler

// RandomTruncatedDyadList draws target = floor(e*truncRate) distinct dyads
// by rejection sampling two distinct uniform vertices, for use as the
// (heads, tails) candidate list passed to GenerateNetworkWithEdgeOrder.
func (s *Sampler) RandomTruncatedDyadList(truncRate float64) (heads, tails []int, err error) {
	if truncRate <= 0 || truncRate > 1 {
		return nil, nil, newConfigErr("truncRate %g must be in (0,1]", truncRate)
	}

	g := s.observed.Graph()
	n := g.Size()
	e := maxEdges(n, g.IsDirected())
	target := int(float64(e) * truncRate)

	seen := make(map[[2]int]struct{}, target)
	heads = make([]int, 0, target)
	tails = make([]int, 0, target)

	for len(heads) < target {
		u := s.rng.Intn(n)
		v := s.rng.Intn(n)
		if u == v {
			continue
		}
		if !g.IsDirected() && u > v {
			u, v = v, u
		}
		if _, dup := seen[[2]int{u, v}]; dup {
			continue
		}
		seen[[2]int{u, v}] = struct{}{}
		tails = append(tails, u)
		heads = append(heads, v)
	}

	return heads, tails, nil
}
