package cli

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the built-in flag defaults.
const (
	envFile            = "PATHCOUNT_ENV_FILE"
	envLogFormat       = "PATHCOUNT_LOG_FORMAT"
	envLogLevel        = "PATHCOUNT_LOG_LEVEL"
	envWorkers         = "PATHCOUNT_WORKERS"
	envMaxMoves        = "PATHCOUNT_MAX_MOVES"
	envHealthcheckPort = "PATHCOUNT_HEALTHCHECK_PORT"
)

// loadEnvFile loads variables from the dotenv file named by
// PATHCOUNT_ENV_FILE (default ".env"). Variables already set in the process
// environment are left untouched; a missing file is not an error.
func loadEnvFile() {
	path := getEnvWithDefault(envFile, ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("No env file found.", "path", path)
			return
		}
		slog.Warn("Env file could not be loaded.", "path", path, "error", err)
		return
	}
	slog.Debug("Env file loaded.", "path", path)
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, returning
// defaultValue when it is unset and an ExitError when it does not parse.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, &ExitError{Code: 2, Message: "environment variable " + key + " must be an integer: " + err.Error()}
	}
	return value, nil
}
