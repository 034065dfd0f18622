// File: variational.go
// Role: batched frame producers: repeat frame production over
// many independently drawn visitation orders, including the truncated
// unconstrained (edge-permutation) variant and an externally supplied order
// callback.
package sampler

import "github.com/duncan-clark/lolog/order"

// OrderFunc supplies an externally generated visitation order, e.g. from a
// caller-side constraint not expressible as a partial-order key vector.
type OrderFunc func() ([]int, error)

// VariationalModelFrame draws nOrders independent visitation orders
// (respecting s's observed model's partial order, if any) and produces one
// model frame per draw via ModelFrameGivenOrder.
func (s *Sampler) VariationalModelFrame(nOrders int, downsampleRate float64) ([]*FrameResult, error) {
	n := s.observed.Graph().Size()
	partial := s.observed.PartialOrder()

	return s.VariationalModelFrameWithFunc(nOrders, downsampleRate, func() ([]int, error) {
		return order.GenerateOrder(n, partial, s.rng), nil
	})
}

// VariationalModelFrameWithFunc is VariationalModelFrame with the visitation
// order supplied by orderFn rather than sampled from s's partial order.
func (s *Sampler) VariationalModelFrameWithFunc(nOrders int, downsampleRate float64, orderFn OrderFunc) ([]*FrameResult, error) {
	if nOrders < 0 {
		return nil, newConfigErr("nOrders %d must be >= 0", nOrders)
	}

	frames := make([]*FrameResult, 0, nOrders)
	for i := 0; i < nOrders; i++ {
		if err := s.checkCancelled(); err != nil {
			return nil, err
		}

		vertOrder, err := orderFn()
		if err != nil {
			return nil, err
		}

		frame, err := s.ModelFrameGivenOrder(downsampleRate, vertOrder)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	return frames, nil
}

// VariationalModelFrameUnconstrained draws nOrders independent frames using
// edge-permutation (truncated) generation: the candidate dyad list is seeded
// with every observed edge, padded with random distinct pairs up to
// e*truncRate, then the head and tail vectors are shuffled independently
// (a deliberate decoupling; see DESIGN.md for the decision record).
func (s *Sampler) VariationalModelFrameUnconstrained(nOrders int, downsampleRate, truncRate float64) ([]*FrameResult, error) {
	if nOrders < 0 {
		return nil, newConfigErr("nOrders %d must be >= 0", nOrders)
	}
	if truncRate <= 0 || truncRate > 1 {
		return nil, newConfigErr("truncRate %g must be in (0,1]", truncRate)
	}

	n := s.observed.Graph().Size()
	partial := s.observed.PartialOrder()

	frames := make([]*FrameResult, 0, nOrders)
	for i := 0; i < nOrders; i++ {
		if err := s.checkCancelled(); err != nil {
			return nil, err
		}

		heads, tails := s.seedTruncatedDyadList(truncRate)
		vertOrder := order.GenerateOrder(n, partial, s.rng)

		frame, err := s.ModelFrameGivenEdgeOrder(downsampleRate, vertOrder, heads, tails)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	return frames, nil
}

// seedTruncatedDyadList builds the candidate dyad list for the
// variational-unconstrained frame producer: every observed
// edge, padded with random distinct pairs up to e*truncRate, then the head
// and tail vectors shuffled independently.
func (s *Sampler) seedTruncatedDyadList(truncRate float64) (heads, tails []int) {
	g := s.observed.Graph()
	n := g.Size()
	e := maxEdges(n, g.IsDirected())
	target := int(float64(e) * truncRate)

	seen := make(map[[2]int]struct{})
	for _, edge := range g.EdgeList() {
		heads = append(heads, edge[1])
		tails = append(tails, edge[0])
		seen[[2]int{edge[0], edge[1]}] = struct{}{}
	}

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

	s.rng.Shuffle(len(heads), func(i, j int) { heads[i], heads[j] = heads[j], heads[i] })
	s.rng.Shuffle(len(tails), func(i, j int) { tails[i], tails[j] = tails[j], tails[i] })

	return heads, tails
}
