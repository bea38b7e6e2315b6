package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	gpxsplit "github.com/theoremus-urban-solutions/gpx-track-splitter"
	"github.com/theoremus-urban-solutions/gpx-track-splitter/gpx"
	"github.com/theoremus-urban-solutions/gpx-track-splitter/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

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

// run holds everything main does except exiting, so tests can drive it.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg := opts.Config
	logger := gpxsplit.NewLogger(cfg.Logging.Level, cfg.Logging.Format, errW)
	slog.SetDefault(logger)

	splitter := gpxsplit.NewSplitter(*cfg, outW, logger)
	if _, err := splitter.Run(ctx, opts.InputPath); err != nil {
		return exitError(err)
	}
	return nil
}

func exitError(err error) error {
	var inputErr *gpx.InputError
	var parseErr *gpx.ParseError
	var writeErr *gpxsplit.WriteError
	switch {
	case errors.As(err, &inputErr):
		if errors.Is(err, os.ErrNotExist) {
			return &cli.ExitError{Code: 1, Message: fmt.Sprintf("Error: Input file '%s' does not exist.", inputErr.Path)}
		}
		return &cli.ExitError{Code: 1, Message: "Error: " + inputErr.Error()}
	case errors.As(err, &parseErr):
		return &cli.ExitError{Code: 1, Message: "Error: " + parseErr.Error()}
	case errors.As(err, &writeErr):
		return &cli.ExitError{Code: 1, Message: "Error: " + writeErr.Error()}
	}
	return &cli.ExitError{Code: 1, Message: "Error: " + err.Error()}
}
