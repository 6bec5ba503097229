package config

import (
	"context"
	"fmt"
)

// Loader is the interface for a format-specific grid loader.
type Loader interface {
	// Load reads every grid file it understands below the given paths and
	// translates them into the format-agnostic model. Files in formats the
	// loader does not handle are ignored.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Chain runs several loaders over the same paths and concatenates their
// models in order. Grid names must be unique across the whole chain.
type Chain []Loader

// Load implements Loader.
func (c Chain) Load(ctx context.Context, paths ...string) (*Model, error) {
	model := &Model{}
	for _, l := range c {
		m, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}

	seen := make(map[string]string, len(model.Grids))
	for _, g := range model.Grids {
		if prev, dup := seen[g.Name]; dup {
			return nil, fmt.Errorf("grid %q declared in both %s and %s", g.Name, prev, g.Path)
		}
		seen[g.Name] = g.Path
	}
	return model, nil
}
