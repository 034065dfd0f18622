// File: doc.go
// Role: package order implements the C1 Ranker and C5 OrderGenerator: turning
// an optional partial-order key vector into a full vertex visitation order,
// and the Fisher-Yates shuffle the sampler re-runs on the unvisited suffix at
// every step of node-sequential generation.
package order
