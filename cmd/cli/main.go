package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/pathcount/internal/app"
	"github.com/vk/pathcount/internal/cli"
	"github.com/vk/pathcount/internal/config"
	"github.com/vk/pathcount/internal/gridtext"
	"github.com/vk/pathcount/internal/hcl"
)

// main is the entrypoint for the pathcount application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Every supported grid format; each loader ignores files it does not handle.
	loader := config.Chain{hcl.NewLoader(), gridtext.NewLoader()}
	pathcountApp := app.NewApp(outW, logW, appConfig, loader)

	return pathcountApp.Run(ctx)
}
