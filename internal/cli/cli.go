package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/toboggan/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("toboggan", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Toboggan - counts the trees hit sliding down a map along fixed slopes.

Usage:
  toboggan [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to the map file. Defaults to ./input.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the map file.")
	iFlag := flagSet.String("i", "", "Path to the map file (shorthand).")
	slopesFlag := flagSet.String("slopes", "", "Path to a .hcl or .yaml slope file, or a directory of them. Empty uses the builtin five slopes.")
	strictFlag := flagSet.Bool("strict", false, "Reject a map whose last row is incomplete instead of dropping it.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one input path, got %d", flagSet.NArg())}
	}

	var paths []string
	for _, p := range []string{*inputFlag, *iFlag, flagSet.Arg(0)} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("input path given more than once: %s", strings.Join(paths, ", "))}
	}

	path := ""
	if len(paths) == 1 {
		path = paths[0]
	}
	slog.Debug("Input path determined.", "path", path)

	config, err := app.NewConfig(app.Config{
		InputPath:  path,
		SlopesPath: *slopesFlag,
		Strict:     *strictFlag,
		LogFormat:  *logFormatFlag,
		LogLevel:   *logLevelFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
