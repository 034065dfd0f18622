// File: doc.go
// Role: package sampler implements C6, the LOLOG engine: node-sequential
// and edge-permutation graph generation, model-frame production, and
// change-statistics-only sweeps, all built on a single propose/accept/
// commit routine shared by both generation modes (see engine.go).
package sampler
