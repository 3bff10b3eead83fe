// Package model defines shared data types used across the series-data tools.
//
// Conventions:
//   - Raw values: base-10 integer strings exactly as received
//   - Clean values: *big.Int (no fixed width)
//   - Timestamps: int64 microseconds since Unix epoch
//   - IDs: uuid.UUID for processing runs, int for record positions within a run
package model
