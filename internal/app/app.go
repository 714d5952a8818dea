// Package app implements the application layer for glean.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports"
	"go.trai.ch/glean/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App exposes the pipeline and cache operations to the CLI layer.
type App struct {
	config  *domain.Config
	factory *pipeline.Factory
	store   ports.ArtifactStore
	logger  ports.Logger
}

// New creates a new App instance.
func New(cfg *domain.Config, factory *pipeline.Factory, store ports.ArtifactStore, log ports.Logger) *App {
	return &App{
		config:  cfg,
		factory: factory,
		store:   store,
		logger:  log,
	}
}

// Config returns the loaded configuration.
func (a *App) Config() *domain.Config { return a.config }

// Run executes one full pipeline run and returns the rendered report.
func (a *App) Run(opts pipeline.RunOptions) (string, error) {
	p, err := a.factory.Run(opts)
	if err != nil {
		return "", err
	}
	return p.Report(), nil
}

// RunBatch runs the pipeline over each file independently. It returns the
// per-file outcomes and an error naming the failed files, if any.
func (a *App) RunBatch(ctx context.Context, files []string, opts pipeline.RunOptions) ([]pipeline.BatchResult, error) {
	results := a.factory.RunBatch(ctx, files, opts)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return results, zerr.With(domain.ErrBatchPartialFailure, "failed", fmt.Sprintf("%d/%d", failed, len(files)))
	}
	return results, nil
}

// ClearCache removes cached entries in the named categories, or all of
// them when none is given.
func (a *App) ClearCache(categories ...domain.Category) error {
	if err := a.store.Clear(categories...); err != nil {
		return err
	}
	if len(categories) == 0 {
		a.logger.Info("cleared all cache categories")
	} else {
		a.logger.Info(fmt.Sprintf("cleared %d cache categories", len(categories)))
	}
	return nil
}

// CacheSize reports entry counts and byte totals per cache category.
func (a *App) CacheSize() (map[domain.Category]domain.Usage, error) {
	return a.store.SizeReport()
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *domain.Config
}
