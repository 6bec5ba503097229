package config

// Model is the unified, format-agnostic representation of every grid found
// in the configured paths.
type Model struct {
	Grids []*GridSource
}

// GridSource is a grid as declared in a file, before validation.
type GridSource struct {
	Name        string
	Description string
	Path        string // file the grid was declared in
	Rows        []string
	// ExpectedPaths, when set, is the count the run must produce for this grid.
	ExpectedPaths *uint64
}

// Merge appends the grids of other to m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Grids = append(m.Grids, other.Grids...)
}
