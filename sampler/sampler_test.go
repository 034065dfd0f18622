package sampler_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/duncan-clark/lolog/core"
	"github.com/duncan-clark/lolog/model"
	"github.com/duncan-clark/lolog/order"
	"github.com/duncan-clark/lolog/sampler"
	"github.com/duncan-clark/lolog/term"
)

func edgesOnly() model.TermFactory {
	return func() []term.Term { return []term.Term{&term.Edges{}} }
}

func edgesAndTriangles() model.TermFactory {
	return func() []term.Term { return []term.Term{&term.Edges{}, &term.Triangle{}} }
}

func k3PlusIsolated() *core.Graph {
	g := core.NewGraph(4, false)
	_, _ = g.Toggle(0, 1)
	_, _ = g.Toggle(1, 2)
	_, _ = g.Toggle(0, 2)

	return g
}

func newSampler(t *testing.T, observed *core.Graph, newTerms model.TermFactory, theta []float64, rng *rand.Rand) *sampler.Sampler {
	t.Helper()
	m, err := model.New(observed, newTerms, model.WithThetas(theta))
	require.NoError(t, err)
	s, err := sampler.New(m, rng)
	require.NoError(t, err)

	return s
}

// Edges-only, n=4 undirected, theta=[0] => p=0.5 per
// dyad, expected edge count 3.0, empirical mean within +-0.1 over 10000 runs.
func TestGenerateNetworkEdgesOnlyThetaZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g := core.NewGraph(4, false)
	s := newSampler(t, g, edgesOnly(), []float64{0}, rng)

	var counts []float64
	for i := 0; i < 10000; i++ {
		vertOrder := order.GenerateOrder(4, nil, rng)
		res, err := s.GenerateNetworkWithOrder(vertOrder, false)
		require.NoError(t, err)
		counts = append(counts, res.Stats[0])
	}

	require.InDelta(t, 3.0, stat.Mean(counts, nil), 0.1)
}

// Edges-only, theta=[log 9] => p=0.9, expected edge
// count 5.4 (n(n-1)/2 * 0.9 = 6*0.9).
func TestGenerateNetworkEdgesOnlyHighTheta(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g := core.NewGraph(4, false)
	s := newSampler(t, g, edgesOnly(), []float64{math.Log(9)}, rng)

	var counts []float64
	for i := 0; i < 10000; i++ {
		vertOrder := order.GenerateOrder(4, nil, rng)
		res, err := s.GenerateNetworkWithOrder(vertOrder, false)
		require.NoError(t, err)
		counts = append(counts, res.Stats[0])
	}

	require.InDelta(t, 5.4, stat.Mean(counts, nil), 0.15)
}

// Edges+triangles, observed K3+isolated vertex,
// theta=[-1.609, 0.693], vert_order=[0,1,2,3], downsampleRate=1 => 6 rows,
// outcomes [1,1,1,0,0,0], delta-edges all 1, delta-triangles
// [0,0,1,0,0,0].
func TestModelFrameGivenOrderK3PlusIsolated(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := k3PlusIsolated()
	s := newSampler(t, g, edgesAndTriangles(), []float64{-1.609, 0.693}, rng)

	frame, err := s.ModelFrameGivenOrder(1.0, []int{0, 1, 2, 3})
	require.NoError(t, err)

	require.Equal(t, []float64{1, 1, 1, 0, 0, 0}, frame.Outcome)
	require.Len(t, frame.Samples, 2)
	require.Equal(t, []float64{1, 1, 1, 1, 1, 1}, frame.Samples[0])
	require.Equal(t, []float64{0, 0, 1, 0, 0, 0}, frame.Samples[1])
}

// CalcChangeStats on an observed graph with e=6,
// terms=[edges] returns six vectors each [1.0].
func TestCalcChangeStatsEdgesOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	g := k3PlusIsolated()
	s := newSampler(t, g, edgesOnly(), []float64{0}, rng)

	var heads, tails []int
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			tails = append(tails, i)
			heads = append(heads, j)
		}
	}

	changeStats, err := s.CalcChangeStats(heads, tails)
	require.NoError(t, err)
	require.Len(t, changeStats, 6)
	for _, delta := range changeStats {
		require.Equal(t, []float64{1.0}, delta)
	}
}

// Edge-permutation mode, truncRate=1 on observed K3,
// edges-only theta=[0] => expected edge count = len(heads)*0.5.
func TestGenerateNetworkWithEdgeOrderTruncRateOne(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g := k3PlusIsolated()
	s := newSampler(t, g, edgesOnly(), []float64{0}, rng)

	heads, tails, err := s.RandomTruncatedDyadList(1.0)
	require.NoError(t, err)
	require.Len(t, heads, 6)

	var total float64
	const runs = 4000
	for i := 0; i < runs; i++ {
		vertOrder := order.GenerateOrder(4, nil, rng)
		res, err := s.GenerateNetworkWithEdgeOrder(vertOrder, heads, tails)
		require.NoError(t, err)
		total += res.Stats[0]
	}

	require.InDelta(t, float64(len(heads))*0.5, total/runs, 0.15)
}

func TestDownsampleRateZeroYieldsEmptyFrame(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	g := k3PlusIsolated()
	s := newSampler(t, g, edgesOnly(), []float64{0}, rng)

	frame, err := s.ModelFrameGivenOrder(0, []int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Empty(t, frame.Outcome)
}

func TestDownsampleRateOneYieldsFullFrame(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := k3PlusIsolated()
	s := newSampler(t, g, edgesOnly(), []float64{0}, rng)

	frame, err := s.ModelFrameGivenOrder(1, []int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Len(t, frame.Outcome, 6)
}

func TestNSingleVertexGeneratesEmptyGraph(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	g := core.NewGraph(1, false)
	s := newSampler(t, g, edgesOnly(), []float64{0}, rng)

	res, err := s.GenerateNetworkWithOrder([]int{0}, false)
	require.NoError(t, err)
	require.Equal(t, 0, res.Network.EdgeCount())
	require.Equal(t, []float64{0}, res.Stats)
}

func TestNTwoUndirectedVisitsExactlyOneDyad(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	g := core.NewGraph(2, false)
	s := newSampler(t, g, edgesOnly(), []float64{0}, rng)

	res, err := s.GenerateNetworkWithOrder([]int{0, 1}, true)
	require.NoError(t, err)
	require.Len(t, res.ChangeStats, 1)
}

func TestVariationalModelFrameProducesNOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	g := k3PlusIsolated()
	s := newSampler(t, g, edgesOnly(), []float64{0}, rng)

	frames, err := s.VariationalModelFrame(5, 1.0)
	require.NoError(t, err)
	require.Len(t, frames, 5)
	for _, f := range frames {
		require.Len(t, f.Outcome, 6)
	}
}

func TestVariationalModelFrameUnconstrainedHonorsTruncRate(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := k3PlusIsolated()
	s := newSampler(t, g, edgesOnly(), []float64{0}, rng)

	frames, err := s.VariationalModelFrameUnconstrained(3, 1.0, 0.5)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	for _, f := range frames {
		require.Len(t, f.Outcome, 3) // floor(6*0.5) = 3 candidate dyads
	}
}

func TestGenerateNetworkRejectsVertOrderLengthMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	g := core.NewGraph(4, false)
	s := newSampler(t, g, edgesOnly(), []float64{0}, rng)

	_, err := s.GenerateNetworkWithOrder([]int{0, 1, 2}, false)
	var cfgErr *sampler.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestEdgeOrderRejectsOutOfRangeVertices(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	g := core.NewGraph(4, false)
	s := newSampler(t, g, edgesOnly(), []float64{0}, rng)

	_, err := s.GenerateNetworkWithEdgeOrder([]int{0, 1, 2, 3}, []int{9}, []int{0})
	var cfgErr *sampler.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	_, err = s.ModelFrameGivenEdgeOrder(1.0, []int{0, 1, 2, 3}, []int{1}, []int{-1})
	require.ErrorAs(t, err, &cfgErr)
}

// For any generated graph and term, a fresh Initialize
// against the generated network reports stats[k] + emptyNetworkStats[k].
func TestGeneratedStatsMatchFreshInitialize(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	g := core.NewGraph(6, false)
	s := newSampler(t, g, edgesAndTriangles(), []float64{0.2, 0.1}, rng)

	for run := 0; run < 20; run++ {
		vertOrder := order.GenerateOrder(6, nil, rng)
		res, err := s.GenerateNetworkWithOrder(vertOrder, false)
		require.NoError(t, err)

		fresh := []term.Term{&term.Edges{}, &term.Triangle{}}
		for k, tm := range fresh {
			tm.Initialize(res.Network)
			require.InDelta(t, res.Stats[k]+res.EmptyNetworkStats[k], tm.Value(), 1e-9, "run %d term %d", run, k)
		}
	}
}

// The __order__ attribute is the inverse permutation of
// the realized vert_order.
func TestGeneratedOrderAttrIsValidRank(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	g := core.NewGraph(5, false)
	s := newSampler(t, g, edgesOnly(), []float64{0}, rng)

	res, err := s.GenerateNetworkWithOrder(order.GenerateOrder(5, nil, rng), false)
	require.NoError(t, err)

	values, ok := res.Network.DiscreteAttr(core.OrderAttrName)
	require.True(t, ok)

	seen := make([]bool, 5)
	for _, r := range values {
		idx := int(r)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 5)
		require.False(t, seen[idx], "rank %d assigned twice", idx)
		seen[idx] = true
	}
}

// A cooperative interrupt set before the call aborts cleanly
// with ErrCancelled between outer iterations.
func TestCancelledContextAbortsCall(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	g := k3PlusIsolated()
	m, err := model.New(g, edgesOnly(), model.WithThetas([]float64{0}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := sampler.New(m, rng, sampler.WithContext(ctx))
	require.NoError(t, err)

	_, err = s.GenerateNetworkWithOrder([]int{0, 1, 2, 3}, false)
	require.ErrorIs(t, err, sampler.ErrCancelled)
}

func TestNewRejectsNilRand(t *testing.T) {
	g := core.NewGraph(4, false)
	m, err := model.New(g, edgesOnly())
	require.NoError(t, err)
	_, err = sampler.New(m, nil)
	require.ErrorIs(t, err, sampler.ErrNilRand)
}
