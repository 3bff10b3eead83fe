package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rickgao/series-data/internal/config"
	"github.com/rickgao/series-data/internal/database"
	"github.com/rickgao/series-data/internal/input"
	"github.com/rickgao/series-data/internal/model"
	"github.com/rickgao/series-data/internal/pipeline"
	"github.com/rickgao/series-data/internal/version"
	"github.com/rickgao/series-data/internal/writer"
)

// errRejected reports that the run finished but some records were invalid.
var errRejected = errors.New("records rejected")

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when empty)")
	inputPath := flag.String("input", "", "input file, or - for stdin (overrides input.path)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := run(ctx, *configPath, *inputPath, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "seriesagg:", err)
		}
		os.Exit(1)
	}
}

// run loads configuration, processes the input and writes one line per
// accepted record to out. Logs go to logOut.
func run(ctx context.Context, configPath, inputPath string, out, logOut io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if inputPath != "" {
		cfg.Input.Path = inputPath
	}

	logger, err := newLogger(cfg.Log, logOut)
	if err != nil {
		return err
	}

	logger.Info("starting seriesagg", append(version.LogAttrs(),
		"instance_id", cfg.Instance.ID,
		"config", configPath,
		"input", cfg.Input.Path,
	)...)

	records, err := input.ReadFile(cfg.Input.Path, cfg.Input.Format)
	if err != nil {
		return err
	}
	logger.Debug("input decoded", "records", len(records))

	p := pipeline.New(pipeline.Config{
		Concurrency: cfg.Pipeline.Concurrency,
		FailFast:    cfg.Pipeline.FailFast,
	}, logger)

	batch, err := p.Run(ctx, records)
	if err != nil {
		return err
	}

	if err := printBatch(out, batch); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cfg.Database.Enabled {
		if err := persist(ctx, cfg, batch, logger); err != nil {
			return err
		}
	}

	for _, recErr := range batch.Errors {
		logger.Error("invalid record", "position", recErr.Position, "error", recErr.Err)
	}
	if len(batch.Errors) > 0 {
		return fmt.Errorf("%w: %d of %d", errRejected, len(batch.Errors), len(records))
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadAndValidate(path)
}

func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), nil
}

// printBatch writes "position index total" for every accepted record.
func printBatch(w io.Writer, batch model.Batch) error {
	for _, r := range batch.Results {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", r.Position, r.Index, r.Total); err != nil {
			return err
		}
	}
	return nil
}

func persist(ctx context.Context, cfg *config.Config, batch model.Batch, logger *slog.Logger) error {
	logger.Info("connecting to database",
		"host", cfg.Database.Postgres.Host,
		"port", cfg.Database.Postgres.Port,
		"database", cfg.Database.Postgres.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database.Postgres)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	w := writer.NewResultWriter(writer.WriterConfig{BatchSize: cfg.Writer.BatchSize}, pool, cfg.Instance.ID, logger)
	if err := w.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := w.Write(ctx, batch.Results); err != nil {
		return err
	}

	stats := w.Stats()
	logger.Info("results stored",
		"run_id", batch.RunID,
		"inserts", stats.Inserts,
		"conflicts", stats.Conflicts,
	)
	return nil
}
