package writer

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DB is the subset of *pgxpool.Pool used by the writer.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// WriterConfig contains configuration for the result writer.
type WriterConfig struct {
	// BatchSize is the number of rows sent per round trip.
	BatchSize int
}

// DefaultWriterConfig returns sensible defaults.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		BatchSize: 1000,
	}
}

// resultRow represents a row to be inserted into the record_aggregates table.
type resultRow struct {
	RunID       string // UUID
	Position    int
	RecordIndex pgtype.Numeric // Arbitrary precision, scale 0
	Count       int
	Total       pgtype.Numeric
	ProcessedAt int64 // Microseconds
	Instance    string
}

// WriterMetrics holds metrics for a writer.
type WriterMetrics struct {
	Inserts   int64
	Conflicts int64
	Errors    int64
	Flushes   int64
}
