// File: frame.go
// Role: model-frame production: the same propose/accept loop as generation,
// but outcomes are copied from the observed graph rather than
// Bernoulli-drawn, and rows are emitted only for downsampled dyads.
package sampler

// ModelFrameGivenOrder produces a model frame by walking vertOrder in
// node-sequential order, copying each dyad's outcome from s's observed
// graph rather than drawing it, and downsampling rows at rate
// downsampleRate.
func (s *Sampler) ModelFrameGivenOrder(downsampleRate float64, vertOrder []int) (*FrameResult, error) {
	if downsampleRate < 0 || downsampleRate > 1 {
		return nil, newConfigErr("downsampleRate %g must be in [0,1]", downsampleRate)
	}

	running := s.noTie.Clone()
	n := running.Graph().Size()
	if len(vertOrder) != n {
		return nil, newConfigErr("vertOrder length %d does not match graph size %d", len(vertOrder), n)
	}
	if s.observed.Graph().Size() != n {
		return nil, newConfigErr("observed graph size %d does not match vertOrder length %d", s.observed.Graph().Size(), n)
	}

	k := running.TermCount()
	maxE := maxEdges(n, running.Graph().IsDirected())
	frame := newFrameResult(k, downsampleRate, maxE)

	vertOrder = append([]int(nil), vertOrder...)

	err := s.runNodeSequential(
		running,
		vertOrder,
		func(vertex, alter int, p float64) (bool, error) {
			return s.observed.Graph().HasEdge(vertex, alter), nil
		},
		func(idx int, vertex, alter int, out stepOutcome) {
			if s.rng.Float64() < downsampleRate {
				frame.append(out.accepted, out.delta)
			}
		},
	)
	if err != nil {
		return nil, err
	}

	return frame.result(), nil
}

// ModelFrameGivenEdgeOrder is the edge-permutation analogue of
// ModelFrameGivenOrder, walking a prebuilt candidate dyad list instead of
// generating one from node-sequential growth.
func (s *Sampler) ModelFrameGivenEdgeOrder(downsampleRate float64, vertOrder, heads, tails []int) (*FrameResult, error) {
	if downsampleRate < 0 || downsampleRate > 1 {
		return nil, newConfigErr("downsampleRate %g must be in [0,1]", downsampleRate)
	}

	running := s.noTie.Clone()
	n := running.Graph().Size()
	if err := validateDyadList(heads, tails, n); err != nil {
		return nil, err
	}
	if len(vertOrder) != n {
		return nil, newConfigErr("vertOrder length %d does not match graph size %d", len(vertOrder), n)
	}

	k := running.TermCount()
	frame := newFrameResult(k, downsampleRate, len(heads))

	vertOrder = append([]int(nil), vertOrder...)

	err := s.runEdgePermutation(
		running,
		vertOrder,
		heads, tails,
		func(vertex, alter int, p float64) (bool, error) {
			return s.observed.Graph().HasEdge(vertex, alter), nil
		},
		func(idx int, vertex, alter int, out stepOutcome) {
			if s.rng.Float64() < downsampleRate {
				frame.append(out.accepted, out.delta)
			}
		},
	)
	if err != nil {
		return nil, err
	}

	return frame.result(), nil
}

// frameBuilder accumulates FrameResult rows, pre-reserving
// downsampleRate*maxEdges + 1000 slots per column.
type frameBuilder struct {
	outcome []float64
	samples [][]float64
}

func newFrameResult(k int, downsampleRate float64, maxEdgesOrLen int) *frameBuilder {
	reserve := int(downsampleRate*float64(maxEdgesOrLen)) + 1000
	samples := make([][]float64, k)
	for i := range samples {
		samples[i] = make([]float64, 0, reserve)
	}

	return &frameBuilder{
		outcome: make([]float64, 0, reserve),
		samples: samples,
	}
}

func (f *frameBuilder) append(accepted bool, delta []float64) {
	v := 0.0
	if accepted {
		v = 1.0
	}
	f.outcome = append(f.outcome, v)
	for k, d := range delta {
		f.samples[k] = append(f.samples[k], d)
	}
}

func (f *frameBuilder) result() *FrameResult {
	return &FrameResult{Outcome: f.outcome, Samples: f.samples}
}
