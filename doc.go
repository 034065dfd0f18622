// Package lolog is your engine room for fitting and simulating Latent Order
// Logistic (LOLOG) models for random graphs.
//
// A LOLOG defines a distribution over graphs via a sequential growth
// process: dyads (potential edges) are visited in a random order, and at
// each step the presence or absence of that dyad is drawn from a logistic
// regression whose linear predictor depends on how adding the edge would
// change a vector of network statistics.
//
// This module is the latent-order likelihood engine — the computational
// core an outer estimator (method of moments / GMM / variational optimiser,
// out of scope here) drives to recover a parameter vector from an observed
// graph. Everything here is organized under five subpackages:
//
//	core/    — the mutable Graph type the engine grows dyad-by-dyad
//	term/    — the Term contract (incremental statistics) + a reference library
//	order/   — vertex visitation order sampling, with optional partial-order constraints
//	model/   — Graph + Terms + θ, the statistic vector and log-likelihood
//	sampler/ — the engine itself: generation, model-frame production, CalcChangeStats
//
// lolog.NewSampler ties them together for the common case: build a Model
// over an observed graph and a term factory, then wrap it in a Sampler.
package lolog
