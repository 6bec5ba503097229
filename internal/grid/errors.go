package grid

import "fmt"

// InvalidGridError reports a grid that violates the shape or content rules:
// no rows, no columns, rows of differing length or an unknown cell.
type InvalidGridError struct {
	Name   string
	Reason string
	Row    int // -1 when the problem is not tied to a row
	Col    int // -1 when the problem is not tied to a column
}

// Error implements the error interface.
func (e *InvalidGridError) Error() string {
	prefix := "invalid grid"
	if e.Name != "" {
		prefix = fmt.Sprintf("invalid grid %q", e.Name)
	}
	switch {
	case e.Row >= 0 && e.Col >= 0:
		return fmt.Sprintf("%s: row %d, column %d: %s", prefix, e.Row, e.Col, e.Reason)
	case e.Row >= 0:
		return fmt.Sprintf("%s: row %d: %s", prefix, e.Row, e.Reason)
	default:
		return fmt.Sprintf("%s: %s", prefix, e.Reason)
	}
}

func invalid(name, reason string, row, col int) *InvalidGridError {
	return &InvalidGridError{Name: name, Reason: reason, Row: row, Col: col}
}
