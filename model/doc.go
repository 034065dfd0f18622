// File: doc.go
// Role: package model implements C4 Model — a graph, an ordered list of
// terms, a parameter vector θ, and an optional partial vertex order, with
// the statistic/log-likelihood/dyad-update/rollback/clone operations the
// sampler drives.
//
// A Model does not own long-lived term instances across clones: since the
// Term contract (package term) has no Clone operation, Model is constructed
// from a TermFactory — a function producing a fresh set of uninitialized
// terms — so that Clone can rebuild independent term state against the
// cloned graph, matching the "arena of terms, indexed by term id" shape the
// engine design calls for.
package model

import "errors"

// ErrThetaLengthMismatch reports a θ vector whose length does not match the
// number of terms in the model.
var ErrThetaLengthMismatch = errors.New("model: theta length does not match term count")

// ErrPartialOrderLengthMismatch reports a partial order vector whose length
// does not match the graph's vertex count.
var ErrPartialOrderLengthMismatch = errors.New("model: partial order length does not match graph size")
