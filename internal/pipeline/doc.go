// Package pipeline runs coercion and aggregation over a batch of raw records.
//
// Records are processed concurrently up to a configured limit. Results keep
// the input order. Each run is tagged with a fresh UUID so stored results
// from different runs never collide.
package pipeline
