package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anthanhphan/gosdk/logger"
	"github.com/google/uuid"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/adapter/outbound/sidecar"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/adapter/outbound/table"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/config"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/port"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/service"
)

type App struct {
	cfg    *config.Config
	loader port.Loader
}

// JobResult summarises one configured collection pass.
type JobResult struct {
	Job    config.JobConfig
	Tables int
	Rows   int
}

func New(configPath string) (*App, error) {
	// 1. Load Config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Initialize Logger
	logger.InitLogger(&cfg.Logger)

	return NewWithConfig(cfg)
}

// NewWithConfig wires the loader from an already loaded configuration.
func NewWithConfig(cfg *config.Config) (*App, error) {
	readers, err := table.NewDefaultRegistry(cfg.Collector.Delimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to init table readers: %w", err)
	}

	loader := service.NewLoader(cfg.Options, sidecar.NewStore(), readers, cfg.Collector.Workers)

	return &App{
		cfg:    cfg,
		loader: loader,
	}, nil
}

// Loader exposes the wired loader to embedding callers.
func (a *App) Loader() port.Loader {
	return a.loader
}

// Run processes every configured job once, stopping early on SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err := a.Process(ctx)
	return err
}

// Process runs the configured jobs in order. The first failing job aborts the run.
func (a *App) Process(ctx context.Context) ([]JobResult, error) {
	runID := uuid.NewString()
	start := time.Now()
	logger.Infow("Initializer run starting", "run_id", runID, "jobs", len(a.cfg.Jobs))

	results := make([]JobResult, 0, len(a.cfg.Jobs))
	for _, job := range a.cfg.Jobs {
		tables, err := a.loader.Collect(ctx, job.Source, job.Folder, job.Extensions)
		if err != nil {
			logger.Errorw("Initializer job failed",
				"run_id", runID,
				"source", job.Source,
				"folder", job.Folder,
				"error", err.Error())
			return results, fmt.Errorf("job %s/%s: %w", job.Source, job.Folder, err)
		}

		res := JobResult{Job: job, Tables: len(tables)}
		for _, t := range tables {
			res.Rows += t.Len()
			logger.Infow("Loaded data file",
				"run_id", runID,
				"source", job.Source,
				"file", t.Path,
				"rows", t.Len())
		}
		results = append(results, res)
	}

	logger.Infow("Initializer run finished", "run_id", runID, "duration", time.Since(start).String())
	return results, nil
}
