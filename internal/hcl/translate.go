package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/pathcount/internal/config"
	"github.com/vk/pathcount/internal/ctxlog"
)

// translateGrid evaluates a decoded `grid` block into the agnostic model.
func (l *Loader) translateGrid(ctx context.Context, path string, b *gridBlock, evalCtx *hcl.EvalContext) (*config.GridSource, error) {
	logger := ctxlog.FromContext(ctx)

	src := &config.GridSource{
		Name:        b.Name,
		Description: b.Description,
		Path:        path,
	}

	rowsVal, ok, err := evaluate(b.Rows, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("grid %q in %s: rows: %w", b.Name, path, err)
	}
	if !ok {
		return nil, fmt.Errorf("grid %q in %s: rows must not be null", b.Name, path)
	}
	if src.Rows, err = toStringList(rowsVal); err != nil {
		return nil, fmt.Errorf("grid %q in %s: rows %w", b.Name, path, err)
	}

	expectedVal, ok, err := evaluate(b.ExpectedPaths, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("grid %q in %s: expected_paths: %w", b.Name, path, err)
	}
	if ok {
		n, err := toCount(expectedVal)
		if err != nil {
			return nil, fmt.Errorf("grid %q in %s: expected_paths %w", b.Name, path, err)
		}
		src.ExpectedPaths = &n
	}

	logger.Debug("Translated grid block.", "grid", src.Name, "path", path, "rows", len(src.Rows), "has_expectation", src.ExpectedPaths != nil)
	return src, nil
}
