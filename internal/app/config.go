package app

import (
	"errors"
	"fmt"

	"github.com/vk/pathcount/internal/pathcount"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GridPath string // .hcl, .json, .grid or .txt file, or a directory of them

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	Workers         int
	MaxMoves        int
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GridPath == "" {
		return nil, errors.New("GridPath is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.MaxMoves < 0 || cfg.MaxMoves > pathcount.MaxEncodableMoves {
		return nil, fmt.Errorf("max-moves must be between 0 and %d, got %d", pathcount.MaxEncodableMoves, cfg.MaxMoves)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("healthcheck-port must be between 0 and 65535, got %d", cfg.HealthcheckPort)
	}
	return &cfg, nil
}
