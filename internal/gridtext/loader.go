package gridtext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/pathcount/internal/config"
	"github.com/vk/pathcount/internal/ctxlog"
	"github.com/vk/pathcount/internal/fsutil"
	"github.com/vk/pathcount/internal/grid"
)

// Extensions handled by the loader.
var Extensions = []string{".grid", ".txt"}

// Loader reads plain-text grid files.
type Loader struct{}

// NewLoader creates a new plain-text grid loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered plain-text grid files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		src, err := readFile(file)
		if err != nil {
			return nil, err
		}
		logger.Debug("Read plain-text grid.", "grid", src.Name, "path", file, "rows", len(src.Rows))
		model.Grids = append(model.Grids, src)
	}
	return model, nil
}

func readFile(path string) (*config.GridSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid file %s: %w", path, err)
	}
	defer f.Close()

	rows, err := grid.ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("grid file %s: %w", path, err)
	}

	base := filepath.Base(path)
	return &config.GridSource{
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
		Path: path,
		Rows: rows,
	}, nil
}
