// File: engine.go
// Role: the propose/accept/commit routine both generation modes share, plus
// the two dyad-iteration drivers built on top of it: node-sequential and
// edge-permutation.
package sampler

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/duncan-clark/lolog/model"
	"github.com/duncan-clark/lolog/order"
)

// stepOutcome records the result of resolving one proposed dyad flip.
type stepOutcome struct {
	accepted bool
	delta    []float64
	p        float64
}

// stableSigmoid computes 1/(1+e^-x), clamping for |x| > 500 so the
// exponential never overflows.
func stableSigmoid(x float64) float64 {
	switch {
	case x > 500:
		return 1
	case x < -500:
		return 0
	default:
		return 1 / (1 + math.Exp(-x))
	}
}

// xSource adapts the engine's injected *math/rand.Rand to the
// golang.org/x/exp/rand.Source interface distuv distributions draw from, so
// Bernoulli draws consume the same stream as every other random decision in
// a call.
type xSource struct{ rng *rand.Rand }

func (s xSource) Uint64() uint64   { return s.rng.Uint64() }
func (s xSource) Seed(seed uint64) { s.rng.Seed(int64(seed)) }

// bernoulliDraw draws a {0,1} outcome with success probability p using s's
// injected PRNG (gonum's distuv.Bernoulli, per the domain-stack wiring).
func (s *Sampler) bernoulliDraw(p float64) bool {
	b := distuv.Bernoulli{P: p, Src: xSource{s.rng}}

	return b.Rand() == 1
}

// step proposes flipping dyad (vertex, alter) in running, computes the
// logistic acceptance probability from the resulting log-likelihood delta,
// asks decide whether to keep it, and commits or rolls back accordingly.
// assertNoEdge enforces the design invariant that sequential-mode proposals
// never target an already-present dyad.
func (s *Sampler) step(running *model.Model, vertOrder []int, i, vertex, alter int, assertNoEdge bool, decide func(p float64) (bool, error)) (stepOutcome, error) {
	if assertNoEdge && running.Graph().HasEdge(vertex, alter) {
		return stepOutcome{}, ErrInvariantViolation
	}

	theta := running.Thetas()
	termsPre := running.Statistics()
	llikPre := floats.Dot(theta, termsPre)

	running.DyadUpdate(vertex, alter, vertOrder, i)
	termsPost := running.Statistics()
	llikPost := floats.Dot(theta, termsPost)

	deltaLogLik := llikPost - llikPre
	if math.IsNaN(deltaLogLik) || math.IsInf(deltaLogLik, 0) {
		running.Rollback()

		return stepOutcome{}, ErrNumeric
	}

	p := stableSigmoid(deltaLogLik)
	accept, err := decide(p)
	if err != nil {
		running.Rollback()

		return stepOutcome{}, err
	}

	delta := make([]float64, len(termsPost))
	for k := range delta {
		delta[k] = termsPost[k] - termsPre[k]
	}

	if accept {
		if err := running.Commit(vertex, alter); err != nil {
			return stepOutcome{}, err
		}
	} else {
		running.Rollback()
	}

	return stepOutcome{accepted: accept, delta: delta, p: p}, nil
}

// runNodeSequential drives the node-sequential growth loop. decide is
// invoked once per direction with the dyad endpoints and the computed
// acceptance probability;
// onStep receives every resolved dyad's canonical index and outcome.
func (s *Sampler) runNodeSequential(
	running *model.Model,
	vertOrder []int,
	decide func(vertex, alter int, p float64) (bool, error),
	onStep func(canonicalIdx int, vertex, alter int, out stepOutcome),
) error {
	n := running.Graph().Size()
	directed := running.Graph().IsDirected()

	for i := 0; i < n; i++ {
		if err := s.checkCancelled(); err != nil {
			return err
		}

		order.ReshuffleSuffix(vertOrder, i, s.rng)
		vertex := vertOrder[i]

		for j := 0; j < i; j++ {
			alter := vertOrder[j]

			idx := undirectedIndex(i, j)
			if directed {
				idx = directedVertexToAlterIndex(i, j)
			}
			out, err := s.step(running, vertOrder, i, vertex, alter, true, func(p float64) (bool, error) {
				return decide(vertex, alter, p)
			})
			if err != nil {
				return err
			}
			onStep(idx, vertex, alter, out)

			if directed {
				idx2 := directedAlterToVertexIndex(i, j)
				out2, err := s.step(running, vertOrder, i, alter, vertex, true, func(p float64) (bool, error) {
					return decide(alter, vertex, p)
				})
				if err != nil {
					return err
				}
				onStep(idx2, alter, vertex, out2)
			}
		}
	}

	return nil
}

// runEdgePermutation drives the edge-permutation loop over a prebuilt dyad
// list, threading the real position of vertex within vertOrder as the
// order-index argument to DyadUpdate, so order-dependent terms see the true
// count of already-placed vertices (see DESIGN.md for the decision record).
func (s *Sampler) runEdgePermutation(
	running *model.Model,
	vertOrder []int,
	heads, tails []int,
	decide func(vertex, alter int, p float64) (bool, error),
	onStep func(idx int, vertex, alter int, out stepOutcome),
) error {
	rank := order.Invert(vertOrder)

	for idx := 0; idx < len(heads); idx++ {
		if err := s.checkCancelled(); err != nil {
			return err
		}

		vertex, alter := tails[idx], heads[idx]
		actorIndex := rank[vertex]

		out, err := s.step(running, vertOrder, actorIndex, vertex, alter, false, func(p float64) (bool, error) {
			return decide(vertex, alter, p)
		})
		if err != nil {
			return err
		}
		onStep(idx, vertex, alter, out)
	}

	return nil
}
