package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vk/pathcount/internal/ctxlog"
)

// ExpectationError reports a grid whose count differs from the
// expected_paths it declared.
type ExpectationError struct {
	Grid     string
	Expected uint64
	Actual   uint64
}

// Error implements the error interface.
func (e *ExpectationError) Error() string {
	return fmt.Sprintf("grid %q: expected %d paths, counted %d", e.Grid, e.Expected, e.Actual)
}

// Run loads the configured grids, counts the paths through each one and
// writes a "<name>: <count>" line per grid to the output writer. Grids whose
// count misses their declared expectation are reported together in the
// returned error after every grid has been counted.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		if err := a.startHealthcheckServer(ctx, a.config.HealthcheckPort); err != nil {
			return err
		}
		defer a.closeHealthcheckServer(ctx)
	}

	grids, err := a.loadGrids(ctx)
	if err != nil {
		return err
	}

	var mismatches []error
	for _, lg := range grids {
		gridCtx := ctxlog.With(ctx, "grid", lg.source.Name)
		logger := ctxlog.FromContext(gridCtx)

		logger.Info("Counting paths.", "rows", lg.grid.Rows(), "cols", lg.grid.Cols(), "workers", a.config.Workers)
		start := time.Now()
		count, err := a.counter.Count(gridCtx, lg.grid)
		if err != nil {
			return fmt.Errorf("failed to count paths for grid %q: %w", lg.source.Name, err)
		}
		logger.Info("Counted paths.", "paths", count, "candidates", a.counter.Examined(), "duration", time.Since(start))

		if _, err := fmt.Fprintf(a.outW, "%s: %d\n", lg.source.Name, count); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}

		if want := lg.source.ExpectedPaths; want != nil && *want != count {
			logger.Error("Path count does not match expectation.", "expected", *want, "paths", count)
			mismatches = append(mismatches, &ExpectationError{Grid: lg.source.Name, Expected: *want, Actual: count})
		}
	}

	a.logger.Debug("App.Run method finished.", "grids", len(grids), "mismatches", len(mismatches))
	return errors.Join(mismatches...)
}
