// File: changestats.go
// Role: CalcChangeStats — walk every dyad without any acceptance sampling,
// recording each term's change statistic against the
// empty-graph running model, then reverting to match the observed graph.
// Also CalcChangeStatsWithOrder, which lets order-dependent terms be
// exercised here too.
package sampler

import "github.com/duncan-clark/lolog/order"

// CalcChangeStats walks the canonical dyad list (heads[i], tails[i]) without
// any acceptance sampling: at each dyad it computes the change statistic
// from the running (empty-graph) model, records it, then reverts — toggling
// if the observed graph has that edge, rolling back otherwise. Requires
// len(heads) == len(tails) == e; an auxiliary uniform random vert_order is
// sampled internally for order-dependent terms to read.
func (s *Sampler) CalcChangeStats(heads, tails []int) ([][]float64, error) {
	n := s.observed.Graph().Size()
	vertOrder := order.GenerateOrder(n, nil, s.rng)

	return s.CalcChangeStatsWithOrder(vertOrder, heads, tails)
}

// CalcChangeStatsWithOrder is CalcChangeStats with the auxiliary vert_order
// supplied explicitly, so order-dependent terms can be exercised
// deterministically or against a caller-chosen order.
func (s *Sampler) CalcChangeStatsWithOrder(vertOrder, heads, tails []int) ([][]float64, error) {
	running := s.noTie.Clone()
	n := running.Graph().Size()
	if err := validateDyadList(heads, tails, n); err != nil {
		return nil, err
	}
	if len(vertOrder) != n {
		return nil, newConfigErr("vertOrder length %d does not match graph size %d", len(vertOrder), n)
	}

	e := maxEdges(n, running.Graph().IsDirected())
	if len(heads) != e {
		return nil, newConfigErr("heads/tails length %d must equal e=%d", len(heads), e)
	}

	changeStats := make([][]float64, e)
	vertOrder = append([]int(nil), vertOrder...)
	rank := order.Invert(vertOrder)

	for idx := 0; idx < e; idx++ {
		if err := s.checkCancelled(); err != nil {
			return nil, err
		}

		vertex, alter := tails[idx], heads[idx]
		actorIndex := rank[vertex]

		out, err := s.step(running, vertOrder, actorIndex, vertex, alter, false, func(p float64) (bool, error) {
			return s.observed.Graph().HasEdge(vertex, alter), nil
		})
		if err != nil {
			return nil, err
		}
		changeStats[idx] = out.delta
	}

	return changeStats, nil
}
