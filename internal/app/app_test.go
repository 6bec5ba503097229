package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/pathcount/internal/config"
	"github.com/vk/pathcount/internal/grid"
	"github.com/vk/pathcount/internal/gridtext"
	"github.com/vk/pathcount/internal/hcl"
	"github.com/vk/pathcount/internal/pathcount"
	"github.com/vk/pathcount/internal/testutil"
)

const stagedHCL = `
grid "staged" {
  rows = [
    "......X.X",
    "X........",
    "...X...X.",
    "..X....X.",
    ".X....X..",
    "....X....",
    "..X.....X",
    ".........",
  ]
  expected_paths = 102
}
`

// setupAppTest writes files to a temporary grid directory and returns an
// app configured to read it, with its output and log buffers.
func setupAppTest(t *testing.T, files map[string]string, mutate func(*Config)) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	cfg := &Config{
		GridPath:  testutil.WriteFiles(t, files),
		LogLevel:  "debug",
		LogFormat: "json",
		Workers:   1,
		MaxMoves:  pathcount.MaxEncodableMoves,
	}
	if mutate != nil {
		mutate(cfg)
	}

	out := &bytes.Buffer{}
	logBuffer := &testutil.SafeBuffer{}
	loader := config.Chain{hcl.NewLoader(), gridtext.NewLoader()}
	testApp := NewApp(out, logBuffer, cfg, loader)

	t.Cleanup(func() {
		if os.Getenv("PATHCOUNT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})
	return testApp, out, logBuffer
}

func TestRunCountsEveryGrid(t *testing.T) {
	testApp, out, logs := setupAppTest(t, map[string]string{
		"staged.hcl": stagedHCL,
		"tiny.grid":  "..\n..\n",
	}, nil)

	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, "staged: 102\ntiny: 2\n", out.String())
	assert.Contains(t, logs.String(), `"run_id":"`+testApp.RunID()+`"`)
	assert.Contains(t, logs.String(), `"candidates":32768`)

	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		assert.LessOrEqual(t, strings.Count(line, `"grid":`), 1, "grid attribute logged twice: %s", line)
	}
}

func TestRunParallelWorkers(t *testing.T) {
	testApp, out, _ := setupAppTest(t, map[string]string{"staged.hcl": stagedHCL}, func(c *Config) {
		c.Workers = 4
	})

	require.NoError(t, testApp.Run(context.Background()))
	assert.Equal(t, "staged: 102\n", out.String())
}

func TestRunReportsExpectationMismatches(t *testing.T) {
	testApp, out, logs := setupAppTest(t, map[string]string{
		"wrong.hcl": `
grid "open" {
  rows           = ["...", "..."]
  expected_paths = 4
}
grid "blocked" {
  rows           = ["X.", ".."]
  expected_paths = 1
}
`,
	}, nil)

	err := testApp.Run(context.Background())
	require.Error(t, err)

	var mismatch *ExpectationError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, err.Error(), `grid "open": expected 4 paths, counted 3`)
	assert.Contains(t, err.Error(), `grid "blocked": expected 1 paths, counted 0`)
	assert.Equal(t, "open: 3\nblocked: 0\n", out.String(), "every grid is still counted and printed")
	assert.Contains(t, logs.String(), "Path count does not match expectation.")
}

func TestRunFailures(t *testing.T) {
	t.Run("invalid grid", func(t *testing.T) {
		testApp, _, _ := setupAppTest(t, map[string]string{"ragged.grid": "...\n..\n"}, nil)
		err := testApp.Run(context.Background())
		var invalidErr *grid.InvalidGridError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, "ragged", invalidErr.Name)
	})

	t.Run("grid too large for configured limit", func(t *testing.T) {
		testApp, out, _ := setupAppTest(t, map[string]string{"staged.hcl": stagedHCL}, func(c *Config) {
			c.MaxMoves = 8
		})
		err := testApp.Run(context.Background())
		var tooLarge *pathcount.GridTooLargeError
		require.ErrorAs(t, err, &tooLarge)
		assert.Empty(t, out.String())
	})

	t.Run("no grids", func(t *testing.T) {
		testApp, _, _ := setupAppTest(t, map[string]string{"readme.md": "nothing here"}, nil)
		err := testApp.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no grids found")
	})

	t.Run("bad hcl", func(t *testing.T) {
		testApp, _, _ := setupAppTest(t, map[string]string{"bad.hcl": `grid "x" {`}, nil)
		err := testApp.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load grids")
	})

	t.Run("cancelled context", func(t *testing.T) {
		testApp, _, _ := setupAppTest(t, map[string]string{"staged.hcl": stagedHCL}, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.ErrorIs(t, testApp.Run(ctx), context.Canceled)
	})
}

func TestHealthHandler(t *testing.T) {
	testApp, _, _ := setupAppTest(t, map[string]string{"tiny.grid": "..\n.."}, nil)
	require.NoError(t, testApp.Run(context.Background()))

	rec := httptest.NewRecorder()
	testApp.healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK\nexamined 4\n", rec.Body.String())
}

func TestNewConfig(t *testing.T) {
	valid := Config{GridPath: "grids", Workers: 1, MaxMoves: 63}

	testCases := []struct {
		name      string
		mutate    func(*Config)
		expectErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero max moves", mutate: func(c *Config) { c.MaxMoves = 0 }},
		{name: "missing path", mutate: func(c *Config) { c.GridPath = "" }, expectErr: "GridPath"},
		{name: "no workers", mutate: func(c *Config) { c.Workers = 0 }, expectErr: "workers"},
		{name: "max moves too high", mutate: func(c *Config) { c.MaxMoves = 64 }, expectErr: "max-moves"},
		{name: "negative max moves", mutate: func(c *Config) { c.MaxMoves = -1 }, expectErr: "max-moves"},
		{name: "bad port", mutate: func(c *Config) { c.HealthcheckPort = 70000 }, expectErr: "healthcheck-port"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			got, err := NewConfig(cfg)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg, *got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "text", &buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")

	buf.Reset()
	logger = newLogger("bogus", "json", &buf)
	logger.Debug("hidden")
	logger.Info("shown")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"shown"`)
}
