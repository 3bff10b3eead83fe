package model

import (
	"math/big"
	"strconv"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// Record Types
// -----------------------------------------------------------------------------

// RawRecord is a record as received, with every numeric field still a string.
type RawRecord struct {
	Series []string `json:"series"` // Numeric strings, ordered
	Index  string   `json:"index"`  // Integer string
}

// CleanRecord is a RawRecord after every field has been parsed as an integer.
// Values are arbitrary precision, so any base-10 integer survives coercion.
type CleanRecord struct {
	Series []*big.Int `json:"series"`
	Index  *big.Int   `json:"index"`
}

// -----------------------------------------------------------------------------
// Run Types
// -----------------------------------------------------------------------------

// Result is the aggregate of one record within a processing run.
type Result struct {
	RunID       uuid.UUID // Processing run this result belongs to
	Position    int       // Zero-based position of the record in the run input
	Index       *big.Int  // Parsed record index
	Count       int       // Number of series elements
	Total       *big.Int  // Sum of the series
	ProcessedAt int64     // Processing time (µs since epoch)
}

// RecordError describes a record that could not be coerced.
type RecordError struct {
	Position int   // Zero-based position of the record in the run input
	Err      error // Underlying coercion error
}

func (e RecordError) Error() string {
	return "record " + strconv.Itoa(e.Position) + ": " + e.Err.Error()
}

func (e RecordError) Unwrap() error {
	return e.Err
}

// Batch is the outcome of processing one set of raw records.
type Batch struct {
	RunID   uuid.UUID
	Results []Result      // Successful records, in input order
	Errors  []RecordError // Failed records, in input order
}

// Total returns the sum of all result totals in the batch.
func (b Batch) Total() *big.Int {
	total := new(big.Int)
	for _, r := range b.Results {
		if r.Total != nil {
			total.Add(total, r.Total)
		}
	}
	return total
}
