package app

import (
	"context"
	"fmt"

	"github.com/vk/pathcount/internal/config"
	"github.com/vk/pathcount/internal/ctxlog"
	"github.com/vk/pathcount/internal/grid"
)

// loadedGrid pairs a validated grid with the source it was declared by.
type loadedGrid struct {
	grid   *grid.Grid
	source *config.GridSource
}

// loadGrids loads every grid below the configured path and validates it.
func (a *App) loadGrids(ctx context.Context) ([]loadedGrid, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading grids...", "grid_path", a.config.GridPath)

	model, err := a.loader.Load(ctx, a.config.GridPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load grids: %w", err)
	}
	if len(model.Grids) == 0 {
		return nil, fmt.Errorf("no grids found in %s", a.config.GridPath)
	}

	grids := make([]loadedGrid, 0, len(model.Grids))
	for _, src := range model.Grids {
		g, err := grid.FromRows(src.Name, src.Rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.Path, err)
		}
		grids = append(grids, loadedGrid{grid: g, source: src})
	}

	logger.Info("Grids loaded successfully.", "grids_found", len(grids))
	return grids, nil
}
