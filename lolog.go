// File: lolog.go
// Role: the thin root facade wiring core/term/order/model/sampler together.
package lolog

import (
	"math/rand"

	"github.com/duncan-clark/lolog/core"
	"github.com/duncan-clark/lolog/model"
	"github.com/duncan-clark/lolog/sampler"
	"github.com/duncan-clark/lolog/term"
)

// NewSampler builds a Model over observed (using newTerms to construct its
// statistics and theta as its initial parameter vector) and wraps it in a
// Sampler, in one call. opts configure the Sampler (e.g. sampler.WithContext).
func NewSampler(observed *core.Graph, newTerms model.TermFactory, theta []float64, rng *rand.Rand, opts ...sampler.Option) (*sampler.Sampler, error) {
	m, err := model.New(observed, newTerms, model.WithThetas(theta))
	if err != nil {
		return nil, err
	}

	return sampler.New(m, rng, opts...)
}

// NewSamplerWithPartialOrder is NewSampler plus a partial vertex order
// (model.WithPartialOrder), for callers that constrain visitation order.
func NewSamplerWithPartialOrder(observed *core.Graph, newTerms model.TermFactory, theta, partialOrder []float64, rng *rand.Rand, opts ...sampler.Option) (*sampler.Sampler, error) {
	m, err := model.New(observed, newTerms, model.WithThetas(theta), model.WithPartialOrder(partialOrder))
	if err != nil {
		return nil, err
	}

	return sampler.New(m, rng, opts...)
}

// EdgesOnlyTerms is a convenience model.TermFactory for the single-statistic
// edges-only LOLOG.
func EdgesOnlyTerms() []term.Term {
	return []term.Term{&term.Edges{}}
}
