// Package pathcount counts monotone (down/right) paths from the top-left to
// the bottom-right corner of a grid by exhaustive search.
//
// Every candidate path is a sequence of rows+cols-2 moves encoded as the low
// bits of a uint64: bit i set means the i-th move goes right, clear means it
// goes down. The counter enumerates all 2^(rows+cols-2) encodings and asks
// IsValidPath about each one, so the running time is exponential in the
// grid's perimeter.
package pathcount
