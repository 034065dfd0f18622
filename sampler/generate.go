// File: generate.go
// Role: the two generation entry points, node-sequential and
// edge-permutation: drive the growth process to produce a simulated network
// plus realized/expected statistics, optionally recording per-dyad change
// statistics.
package sampler

import (
	"gonum.org/v1/gonum/floats"

	"github.com/duncan-clark/lolog/core"
	"github.com/duncan-clark/lolog/order"
)

// GenerateNetworkWithOrder simulates a network via node-sequential growth
// over vertOrder (caller-supplied, e.g. from order.GenerateOrder against
// s's partial order). If storeChangeStats is
// true, ChangeStats is populated at the canonical dyad index.
func (s *Sampler) GenerateNetworkWithOrder(vertOrder []int, storeChangeStats bool) (*GenerationResult, error) {
	running := s.noTie.Clone()
	n := running.Graph().Size()
	if len(vertOrder) != n {
		return nil, newConfigErr("vertOrder length %d does not match graph size %d", len(vertOrder), n)
	}

	emptyStats := append([]float64(nil), running.Statistics()...)
	expected := make([]float64, running.TermCount())

	var changeStats [][]float64
	if storeChangeStats {
		e := maxEdges(n, running.Graph().IsDirected())
		changeStats = make([][]float64, e)
	}

	vertOrder = append([]int(nil), vertOrder...)

	err := s.runNodeSequential(
		running,
		vertOrder,
		func(vertex, alter int, p float64) (bool, error) {
			return s.bernoulliDraw(p), nil
		},
		func(idx int, vertex, alter int, out stepOutcome) {
			floats.AddScaled(expected, out.p, out.delta)
			if storeChangeStats {
				changeStats[idx] = out.delta
			}
		},
	)
	if err != nil {
		return nil, err
	}

	if err := stampOrderAttr(running.Graph(), vertOrder); err != nil {
		return nil, err
	}

	return &GenerationResult{
		Network:           running.Graph(),
		EmptyNetworkStats: emptyStats,
		Stats:             running.Statistics(),
		ExpectedStats:     expected,
		ChangeStats:       changeStats,
	}, nil
}

// GenerateNetworkWithEdgeOrder simulates a network via edge-permutation
// growth over a prebuilt candidate dyad list (tails[i], heads[i]).
// vertOrder is sampled independently and used only so
// order-dependent terms can read visitation history; it does not enumerate
// dyads. len(heads) must equal len(tails).
func (s *Sampler) GenerateNetworkWithEdgeOrder(vertOrder, heads, tails []int) (*GenerationResult, error) {
	running := s.noTie.Clone()
	n := running.Graph().Size()
	if err := validateDyadList(heads, tails, n); err != nil {
		return nil, err
	}
	if len(vertOrder) != n {
		return nil, newConfigErr("vertOrder length %d does not match graph size %d", len(vertOrder), n)
	}

	emptyStats := append([]float64(nil), running.Statistics()...)
	expected := make([]float64, running.TermCount())
	changeStats := make([][]float64, len(heads))

	vertOrder = append([]int(nil), vertOrder...)

	err := s.runEdgePermutation(
		running,
		vertOrder,
		heads, tails,
		func(vertex, alter int, p float64) (bool, error) {
			return s.bernoulliDraw(p), nil
		},
		func(idx int, vertex, alter int, out stepOutcome) {
			floats.AddScaled(expected, out.p, out.delta)
			changeStats[idx] = out.delta
		},
	)
	if err != nil {
		return nil, err
	}

	if err := stampOrderAttr(running.Graph(), vertOrder); err != nil {
		return nil, err
	}

	return &GenerationResult{
		Network:           running.Graph(),
		EmptyNetworkStats: emptyStats,
		Stats:             running.Statistics(),
		ExpectedStats:     expected,
		ChangeStats:       changeStats,
	}, nil
}

// stampOrderAttr attaches the __order__ attribute: the value at vertex v is
// its rank (0-based position) in vertOrder.
func stampOrderAttr(g *core.Graph, vertOrder []int) error {
	rank := order.Invert(vertOrder)
	values := make([]float64, len(rank))
	for v, r := range rank {
		values[v] = float64(r)
	}

	return g.SetDiscreteAttr(core.OrderAttrName, values)
}
