package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/pathcount/internal/config"
	"github.com/vk/pathcount/internal/ctxlog"
	"github.com/vk/pathcount/internal/fsutil"
)

// Extensions handled by the loader.
const (
	NativeExtension = ".hcl"
	JSONExtension   = ".json"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL grid loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl and .json file under paths and translates their
// grid blocks into the model. Grid names must be unique across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, NativeExtension, JSONExtension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()
	evalCtx := newEvalContext()
	seen := make(map[string]string)

	for _, file := range files {
		var (
			hclFile *hcl.File
			diags   hcl.Diagnostics
		)
		if strings.HasSuffix(file, JSONExtension) {
			hclFile, diags = parser.ParseJSONFile(file)
		} else {
			hclFile, diags = parser.ParseHCLFile(file)
		}
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Grids {
			if prev, dup := seen[block.Name]; dup {
				return nil, fmt.Errorf("grid %q declared in both %s and %s", block.Name, prev, file)
			}
			seen[block.Name] = file

			src, err := l.translateGrid(ctx, file, block, evalCtx)
			if err != nil {
				return nil, err
			}
			model.Grids = append(model.Grids, src)
		}
	}

	logger.Debug("HCL loading complete.", "files", len(files), "grids", len(model.Grids))
	return model, nil
}
