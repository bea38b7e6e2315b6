package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/theoremus-urban-solutions/gpx-track-splitter/config"
	"github.com/theoremus-urban-solutions/gpx-track-splitter/internal/version"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the result of a successful Parse.
type Options struct {
	InputPath string
	Config    *config.AppConfig
}

// Parse processes command-line arguments. It returns the options to run
// with, a boolean telling the caller to exit cleanly (help, version), or an
// ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("gpx-track-splitter", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gpx-track-splitter - Split a GPX file with multiple tracks into separate GPX files.

Usage:
  gpx-track-splitter [options] input_file [options]

Arguments:
  input_file
    Path to the input GPX file. Outputs are written as
    <basename>_Track_<N>.gpx next to it.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a YAML config file. Defaults to ./gpx-track-splitter.yml when present.")
	outFlag := flagSet.String("out", "", "Directory to write split files to. Defaults to the input's directory.")
	namingFlag := flagSet.String("naming", "", "Output naming: 'index' (<base>_Track_<N>.gpx) or 'name' (<base>_<track name>.gpx).")
	indentFlag := flagSet.Int("indent", -1, "Spaces of indentation in written files, 0 keeps source whitespace.")
	noWaypointsFlag := flagSet.Bool("no-waypoints", false, "Do not copy top-level waypoints into each output.")
	noOverwriteFlag := flagSet.Bool("no-overwrite", false, "Fail instead of replacing existing output files.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json'.")
	versionFlag := flagSet.Bool("version", false, "Print version and exit.")

	positional, err := parseInterspersed(flagSet, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *versionFlag {
		fmt.Fprintf(output, "gpx-track-splitter %s\n", version.String())
		return nil, true, nil
	}

	switch len(positional) {
	case 1:
	case 0:
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "error: the following arguments are required: input_file"}
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("error: unrecognized arguments: %v", positional[1:])}
	}

	var cfg *config.AppConfig
	if *configFlag != "" {
		cfg, err = config.Load(*configFlag)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Flags given explicitly win over the config file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output.Dir = *outFlag
		case "naming":
			cfg.Output.Naming = *namingFlag
		case "indent":
			cfg.Output.Indent = *indentFlag
		case "no-waypoints":
			cfg.Include.Waypoints = !*noWaypointsFlag
		case "no-overwrite":
			cfg.Output.Overwrite = !*noOverwriteFlag
		case "log-level":
			cfg.Logging.Level = *logLevelFlag
		case "log-format":
			cfg.Logging.Format = *logFormatFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid options: %v", err)}
	}

	opts := &Options{InputPath: positional[0], Config: cfg}
	slog.Debug("CLI parser finished successfully.", "input", opts.InputPath)
	return opts, false, nil
}

// parseInterspersed parses flags on either side of positional arguments.
// Everything after a "--" terminator is positional.
func parseInterspersed(flagSet *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	rest := args
	for {
		if err := flagSet.Parse(rest); err != nil {
			return nil, err
		}
		remaining := flagSet.Args()
		if len(remaining) == 0 {
			return positional, nil
		}
		if consumed := len(rest) - len(remaining); consumed > 0 && rest[consumed-1] == "--" {
			return append(positional, remaining...), nil
		}
		positional = append(positional, remaining[0])
		rest = remaining[1:]
	}
}
