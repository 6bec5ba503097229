// Package gridtext implements config.Loader for plain-text grid files: one
// row of '.' and 'X' per line, with blank lines and '#' comments ignored.
// The grid is named after its file.
package gridtext
