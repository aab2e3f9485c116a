package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"hashAnalysisBackend/internal/adapter/db"
	"hashAnalysisBackend/internal/config"
	"hashAnalysisBackend/internal/core/service"
	"hashAnalysisBackend/internal/pkg/concurrency"
	"hashAnalysisBackend/internal/pkg/logging"
	"hashAnalysisBackend/internal/pkg/metrics"
	"hashAnalysisBackend/internal/port"
)

// Runtime owns the long-lived pieces behind an AnalysisService.
type Runtime struct {
	Service   *service.AnalysisService
	Pool      *concurrency.WorkerPool
	Collector *metrics.Collector
	Repo      port.Repository

	reporter *metrics.Reporter
	cancel   context.CancelFunc
}

// New starts the worker pool and resource sampling and, when persist is set and a
// database driver is configured, opens and migrates the repository.
func New(ctx context.Context, cfg config.Config, persist bool) (*Runtime, error) {
	ctx, cancel := context.WithCancel(ctx)
	rt := &Runtime{cancel: cancel}

	rt.Pool = concurrency.NewWorkerPool(cfg.Pool.Workers, cfg.Pool.QueueSize)
	rt.Pool.Start(ctx)

	rt.Collector = metrics.NewCollector(cfg.Metrics.Interval)
	rt.Collector.Start(ctx)

	if cfg.Metrics.ReportPath != "" {
		reporter, err := metrics.NewFileReporter(cfg.Metrics.ReportPath)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.reporter = reporter
		rt.reporter.Start(ctx, cfg.Metrics.Interval)
	}

	if persist && cfg.Database.Enabled() {
		repo, err := db.NewSQLRepository(cfg.Database.Driver, cfg.Database.GetDSN())
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.Repo = repo
		if err := repo.Migrate(ctx); err != nil {
			rt.Close()
			return nil, err
		}
		logging.Infof("storing analyses in %s", cfg.Database.Driver)
	}

	rt.Service = service.NewAnalysisService(rt.Repo, service.NewAnalyzer(rt.Pool),
		service.WithLimits(service.Limits{
			MaxHashes:       cfg.Limits.MaxHashes,
			MaxWordlistSize: cfg.Limits.MaxWordlistSize,
		}),
		service.WithPool(rt.Pool),
		service.WithCollector(rt.Collector),
		service.WithReporter(rt.reporter),
	)

	logging.Debugf("runtime ready with %d workers", rt.Pool.Size())
	return rt, nil
}

// Close stops the pool, flushes the metrics report and closes the repository.
func (r *Runtime) Close() error {
	r.cancel()
	r.Pool.Stop()

	var errs []error
	if err := r.reporter.Close(); err != nil {
		errs = append(errs, err)
	}
	if r.Repo != nil {
		if err := r.Repo.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close repository: %w", err))
		}
	}
	return errors.Join(errs...)
}
