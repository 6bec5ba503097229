package app

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/vk/pathcount/internal/config"
	"github.com/vk/pathcount/internal/pathcount"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loader  config.Loader
	counter *pathcount.Counter
	runID   string

	httpServer *http.Server
}

// NewApp is the constructor for the main application. Results are written
// to outW and logs to logW through an isolated logger tagged with a fresh
// run ID.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	runID := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", runID)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
		counter: pathcount.New(
			pathcount.WithWorkers(cfg.Workers),
			pathcount.WithMaxMoves(cfg.MaxMoves),
		),
		runID: runID,
	}
}

// RunID returns the identifier attached to every log record of this app.
func (a *App) RunID() string {
	return a.runID
}
