package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes the top-level blocks of a grid file. It has no remain
// field, so unknown blocks and attributes are decode errors.
type fileRoot struct {
	Grids []*gridBlock `hcl:"grid,block"`
}

// gridBlock is the HCL schema of a `grid` block. Rows and ExpectedPaths are
// kept as expressions so they can be evaluated with the loader's context.
type gridBlock struct {
	Name          string         `hcl:"name,label"`
	Description   string         `hcl:"description,optional"`
	Rows          hcl.Expression `hcl:"rows"`
	ExpectedPaths hcl.Expression `hcl:"expected_paths,optional"`
}
