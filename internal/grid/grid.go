package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular, read-only arrangement of cells. The zero value is
// not a valid grid; build one with New, FromRows or Parse.
type Grid struct {
	Name  string
	cells [][]Cell
}

// New copies cells into a new Grid and validates its shape.
func New(name string, cells [][]Cell) (*Grid, error) {
	copied := make([][]Cell, len(cells))
	for i, row := range cells {
		copied[i] = append([]Cell(nil), row...)
	}
	g := &Grid{Name: name, cells: copied}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// FromRows builds a grid from strings of '.' and 'X' runes, one per row.
func FromRows(name string, rows []string) (*Grid, error) {
	cells := make([][]Cell, len(rows))
	for r, line := range rows {
		cells[r] = make([]Cell, 0, len(line))
		col := 0
		for _, ch := range line {
			cell, err := ParseCell(ch)
			if err != nil {
				return nil, invalid(name, err.Error(), r, col)
			}
			cells[r] = append(cells[r], cell)
			col++
		}
	}
	g := &Grid{Name: name, cells: cells}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks that the grid has at least one row and one column and
// that every row has the same length.
func (g *Grid) Validate() error {
	if g == nil {
		return invalid("", "grid is nil", -1, -1)
	}
	if len(g.cells) == 0 {
		return invalid(g.Name, "grid has no rows", -1, -1)
	}
	cols := len(g.cells[0])
	if cols == 0 {
		return invalid(g.Name, "grid has no columns", 0, -1)
	}
	for r, row := range g.cells {
		if len(row) != cols {
			return invalid(g.Name, fmt.Sprintf("expected %d columns, got %d", cols, len(row)), r, -1)
		}
		for c, cell := range row {
			if cell != Passable && cell != Blocked {
				return invalid(g.Name, fmt.Sprintf("unknown cell state %d", uint8(cell)), r, c)
			}
		}
	}
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the number of columns, taken from the first row.
func (g *Grid) Cols() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// At returns the cell at (row, col). The boolean is false when the
// coordinates fall outside the grid.
func (g *Grid) At(row, col int) (Cell, bool) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return Blocked, false
	}
	return g.cells[row][col], true
}

// Start returns the top-left cell.
func (g *Grid) Start() Cell {
	cell, _ := g.At(0, 0)
	return cell
}

// Goal returns the bottom-right cell.
func (g *Grid) Goal() Cell {
	cell, _ := g.At(g.Rows()-1, g.Cols()-1)
	return cell
}

// String renders the grid in its external form, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteRune(cell.Rune())
		}
	}
	return sb.String()
}
