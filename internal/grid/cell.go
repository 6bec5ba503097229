package grid

import "fmt"

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Passable cells may be entered by a path.
	Passable Cell = iota
	// Blocked cells may never be entered.
	Blocked
)

// External runes for each cell state.
const (
	PassableRune = '.'
	BlockedRune  = 'X'
)

// Rune returns the external representation of the cell.
func (c Cell) Rune() rune {
	if c == Blocked {
		return BlockedRune
	}
	return PassableRune
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	switch c {
	case Passable:
		return "passable"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// ParseCell converts an external rune into a Cell.
func ParseCell(r rune) (Cell, error) {
	switch r {
	case PassableRune:
		return Passable, nil
	case BlockedRune:
		return Blocked, nil
	default:
		return Passable, fmt.Errorf("unknown cell %q: must be %q or %q", r, PassableRune, BlockedRune)
	}
}
