package writer

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/rickgao/series-data/internal/model"
)

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS record_aggregates (
		run_id       UUID        NOT NULL,
		position     INTEGER     NOT NULL,
		record_index NUMERIC     NOT NULL,
		count        INTEGER     NOT NULL,
		total        NUMERIC     NOT NULL,
		processed_at BIGINT      NOT NULL,
		instance     TEXT        NOT NULL,
		PRIMARY KEY (run_id, position)
	)
`

const insertSQL = `
	INSERT INTO record_aggregates (run_id, position, record_index, count, total, processed_at, instance)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (run_id, position) DO NOTHING
`

// ResultWriter writes pipeline results to the record_aggregates table.
type ResultWriter struct {
	cfg      WriterConfig
	db       DB
	instance string
	logger   *slog.Logger

	mu      sync.Mutex
	metrics WriterMetrics
}

// NewResultWriter creates a new ResultWriter.
func NewResultWriter(cfg WriterConfig, db DB, instance string, logger *slog.Logger) *ResultWriter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = DefaultWriterConfig().BatchSize
	}
	return &ResultWriter{
		cfg:      cfg,
		db:       db,
		instance: instance,
		logger:   logger,
	}
}

// EnsureSchema creates the record_aggregates table if it does not exist.
func (w *ResultWriter) EnsureSchema(ctx context.Context) error {
	if _, err := w.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create record_aggregates: %w", err)
	}
	return nil
}

// Write inserts results in chunks of BatchSize. It stops at the first failed chunk.
func (w *ResultWriter) Write(ctx context.Context, results []model.Result) error {
	for start := 0; start < len(results); start += w.cfg.BatchSize {
		end := min(start+w.cfg.BatchSize, len(results))
		if err := w.flush(ctx, results[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// Stats returns current metrics.
func (w *ResultWriter) Stats() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// flush writes one chunk to the database.
func (w *ResultWriter) flush(ctx context.Context, results []model.Result) error {
	rows := make([]resultRow, len(results))
	for i, r := range results {
		rows[i] = w.transform(r)
	}

	start := time.Now()

	conflicts, err := w.batchInsert(ctx, rows)
	if err != nil {
		w.logger.Error("batch insert failed", "error", err, "count", len(rows))
		w.mu.Lock()
		w.metrics.Errors++
		w.mu.Unlock()
		return fmt.Errorf("insert results: %w", err)
	}

	w.mu.Lock()
	w.metrics.Inserts += int64(len(rows) - conflicts)
	w.metrics.Conflicts += int64(conflicts)
	w.metrics.Flushes++
	w.mu.Unlock()

	w.logger.Debug("flushed results",
		"count", len(rows),
		"conflicts", conflicts,
		"duration", time.Since(start),
	)
	return nil
}

// transform converts a model.Result to a resultRow.
func (w *ResultWriter) transform(r model.Result) resultRow {
	return resultRow{
		RunID:       r.RunID.String(),
		Position:    r.Position,
		RecordIndex: toNumeric(r.Index),
		Count:       r.Count,
		Total:       toNumeric(r.Total),
		ProcessedAt: r.ProcessedAt,
		Instance:    w.instance,
	}
}

// batchInsert inserts rows using pgx.Batch with ON CONFLICT DO NOTHING.
func (w *ResultWriter) batchInsert(ctx context.Context, rows []resultRow) (conflicts int, err error) {
	batch := &pgx.Batch{}
	for _, r := range rows {
		batch.Queue(insertSQL, r.RunID, r.Position, r.RecordIndex, r.Count, r.Total, r.ProcessedAt, r.Instance)
	}

	results := w.db.SendBatch(ctx, batch)
	defer results.Close()

	for range rows {
		ct, err := results.Exec()
		if err != nil {
			return 0, err
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	return conflicts, nil
}

// toNumeric wraps an integer as a NUMERIC with scale 0. Nil maps to SQL NULL.
func toNumeric(n *big.Int) pgtype.Numeric {
	if n == nil {
		return pgtype.Numeric{}
	}
	return pgtype.Numeric{Int: new(big.Int).Set(n), Exp: 0, Valid: true}
}
