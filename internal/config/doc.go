// Package config defines the format-agnostic model of the grids a run
// operates on, along with the Loader interface that format-specific packages
// (such as hcl and gridtext) implement.
//
// The `config.Model` is the single source of truth for the `app` package.
// Grid sources are kept as raw row strings; validation into a grid.Grid
// happens after loading so every format reports shape errors the same way.
package config
