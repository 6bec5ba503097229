package pathcount

import "fmt"

// GridTooLargeError is returned when a grid needs more moves than the
// counter is allowed to enumerate.
type GridTooLargeError struct {
	Rows          int
	Cols          int
	RequiredMoves int
	Limit         int
}

// Error implements the error interface.
func (e *GridTooLargeError) Error() string {
	return fmt.Sprintf("grid %dx%d needs %d moves per path, more than the limit of %d",
		e.Rows, e.Cols, e.RequiredMoves, e.Limit)
}
