package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadRows reads the row lines of a plain-text grid. Blank lines and lines
// starting with '#' are skipped and surrounding whitespace is trimmed.
func ReadRows(r io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}
	return rows, nil
}

// Parse reads a plain-text grid and validates it.
func Parse(r io.Reader, name string) (*Grid, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	return FromRows(name, rows)
}
