// Package writer persists aggregated record results to PostgreSQL.
//
// Results are inserted in batches with append-only semantics: a result is
// keyed by (run_id, position) and a repeated insert is counted as a conflict
// rather than an update.
package writer
