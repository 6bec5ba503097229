package pathcount

import "github.com/vk/pathcount/internal/grid"

// IsValidPath reports whether the candidate encoded by bits walks from (0,0)
// to (rows-1, cols-1) without leaving the grid or entering a blocked cell.
// The walk stops at the first offending move; later bits are not read.
func IsValidPath(g *grid.Grid, bits uint64, requiredMoves, rows, cols int) bool {
	row, col := 0, 0

	for i := 0; i < requiredMoves; i++ {
		if MoveAt(bits, i) == Right {
			col++
		} else {
			row++
		}

		if row >= rows || col >= cols {
			return false
		}
		if cell, ok := g.At(row, col); !ok || cell == grid.Blocked {
			return false
		}
	}

	return row == rows-1 && col == cols-1
}
