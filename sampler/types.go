// File: types.go
// Role: the Sampler type, its construction, and the output shapes for
// generation and frame calls.
package sampler

import (
	"context"
	"errors"
	"math/rand"

	"github.com/duncan-clark/lolog/core"
	"github.com/duncan-clark/lolog/model"
)

// ErrNilRand is returned by New when rng is nil: the engine never falls
// back to a hidden global PRNG.
var ErrNilRand = errors.New("sampler: rng must not be nil")

// Sampler owns the observed model (reference graph) and a noTieModel
// (identical terms and θ, emptied graph) simulation starts from.
type Sampler struct {
	observed *model.Model
	noTie    *model.Model
	rng      *rand.Rand
	ctx      context.Context
}

// Option configures a Sampler at construction time.
type Option func(*Sampler)

// WithContext sets a cooperative-cancellation context, checked between
// outer iterations of every generation/frame loop. Passing a nil context
// has no effect; the default is context.Background.
func WithContext(ctx context.Context) Option {
	return func(s *Sampler) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// New builds a Sampler over observed, deriving noTieModel as an empty-graph
// clone of it (same terms and θ).
func New(observed *model.Model, rng *rand.Rand, opts ...Option) (*Sampler, error) {
	if rng == nil {
		return nil, ErrNilRand
	}

	s := &Sampler{
		observed: observed,
		noTie:    observed.EmptyClone(),
		rng:      rng,
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// GenerationResult is the output of a generation call.
type GenerationResult struct {
	Network           *core.Graph
	EmptyNetworkStats []float64
	Stats             []float64
	ExpectedStats     []float64
	ChangeStats       [][]float64 // GenerateNetworkWithOrder: nil unless storeChangeStats; GenerateNetworkWithEdgeOrder: always set, one entry per candidate dyad
}

// FrameResult is the output of a model-frame call.
type FrameResult struct {
	Outcome []float64   // {0,1} per sampled dyad
	Samples [][]float64 // outer length k (terms), inner length len(Outcome)
}

// checkCancelled reports ErrCancelled if s's context was cancelled.
func (s *Sampler) checkCancelled() error {
	select {
	case <-s.ctx.Done():
		return ErrCancelled
	default:
		return nil
	}
}
