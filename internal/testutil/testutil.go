// Package testutil holds fixtures and helpers shared by tests across the
// module.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// StagedRows is the 8x9 staged opponent avoidance grid. It has exactly
// StagedPaths valid paths.
var StagedRows = []string{
	"......X.X",
	"X........",
	"...X...X.",
	"..X....X.",
	".X....X..",
	"....X....",
	"..X.....X",
	".........",
}

// StagedPaths is the number of valid paths through StagedRows.
const StagedPaths = 102

// OpenRows returns a rows x cols grid of passable cells.
func OpenRows(rows, cols int) []string {
	out := make([]string, rows)
	for i := range out {
		out[i] = strings.Repeat(".", cols)
	}
	return out
}

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteFiles writes each name -> content pair below a fresh temporary
// directory and returns the directory. Names may contain subdirectories.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}
