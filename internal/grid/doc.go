// Package grid defines the immutable rectangular grid of passable and
// blocked cells that path counting operates on, along with its validation
// rules and the plain-text representation ('.' passable, 'X' blocked).
package grid
