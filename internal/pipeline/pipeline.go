package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rickgao/series-data/internal/aggregate"
	"github.com/rickgao/series-data/internal/convert"
	"github.com/rickgao/series-data/internal/model"
)

// Config holds pipeline configuration.
type Config struct {
	Concurrency int  // Max records processed at once (default: 8)
	FailFast    bool // Abort the run on the first invalid record
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Concurrency: 8,
		FailFast:    false,
	}
}

// Pipeline coerces and aggregates batches of raw records.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger

	// now returns the processing timestamp in µs since epoch.
	now func() int64
	// newID returns the run identifier.
	newID func() uuid.UUID
}

// New creates a new Pipeline.
func New(cfg Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Pipeline{
		cfg:    cfg,
		logger: logger,
		now:    func() int64 { return time.Now().UnixMicro() },
		newID:  uuid.New,
	}
}

// Process coerces and aggregates a single record.
func Process(raw model.RawRecord) (model.CleanRecord, *big.Int, error) {
	clean, err := convert.Coerce(raw)
	if err != nil {
		return model.CleanRecord{}, nil, err
	}
	return clean, aggregate.Sum(clean), nil
}

// Run processes every record and returns the batch.
//
// With FailFast set, the first invalid record cancels the run and its
// model.RecordError is returned. Otherwise invalid records are collected in
// Batch.Errors and the run continues.
func (p *Pipeline) Run(ctx context.Context, records []model.RawRecord) (model.Batch, error) {
	start := time.Now()
	runID := p.newID()

	results := make([]*model.Result, len(records))
	failures := make([]error, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)

	for i := range records {
		if gctx.Err() != nil {
			break
		}

		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			clean, total, err := Process(records[i])
			if err != nil {
				recErr := model.RecordError{Position: i, Err: err}
				if p.cfg.FailFast {
					return recErr
				}
				failures[i] = err
				return nil
			}

			results[i] = &model.Result{
				RunID:       runID,
				Position:    i,
				Index:       clean.Index,
				Count:       len(clean.Series),
				Total:       total,
				ProcessedAt: p.now(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.logger.Warn("run aborted", "run_id", runID, "error", err)
		return model.Batch{}, fmt.Errorf("run %s: %w", runID, err)
	}
	if err := ctx.Err(); err != nil {
		return model.Batch{}, fmt.Errorf("run %s: %w", runID, err)
	}

	batch := model.Batch{
		RunID:   runID,
		Results: make([]model.Result, 0, len(records)),
		Errors:  []model.RecordError{},
	}
	for i := range records {
		if failures[i] != nil {
			batch.Errors = append(batch.Errors, model.RecordError{Position: i, Err: failures[i]})
			continue
		}
		if results[i] != nil {
			batch.Results = append(batch.Results, *results[i])
		}
	}

	for _, recErr := range batch.Errors {
		p.logger.Debug("record rejected", "run_id", runID, "position", recErr.Position, "error", recErr.Err)
	}

	p.logger.Info("run complete",
		"run_id", runID,
		"records", len(records),
		"accepted", len(batch.Results),
		"rejected", len(batch.Errors),
		"total", batch.Total().String(),
		"duration", time.Since(start),
	)

	return batch, nil
}
