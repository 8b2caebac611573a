package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/argscope/internal/app"
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

// Parse processes the inspector's own command-line arguments. It returns a
// populated app.Config, a boolean indicating the program should exit
// cleanly (help was printed), or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("argscope", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
argscope - a tree-scoped command-line argument inspector.

Usage:
  argscope -catalog CATALOG [options] -- ARG...

Arguments:
  CATALOG
    Path to a catalog manifest (.hcl) or a directory of manifests.
  ARG...
    The argument vector to parse against the catalog.

Options:
`)
		flagSet.PrintDefaults()
	}

	catalogFlag := flagSet.String("catalog", "", "Path to the catalog manifest file or directory.")
	cFlag := flagSet.String("c", "", "Path to the catalog manifest file or directory (shorthand).")
	listFlag := flagSet.Bool("list", false, "List the catalog's options instead of parsing.")
	formatFlag := flagSet.String("format", "text", "Output format for the parsed tree. Options: 'text' or 'json'.")
	colorFlag := flagSet.Bool("color", false, "Colorize text output.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	maxDepthFlag := flagSet.Int("max-depth", 0, "Maximum command nesting depth. 0 means the default.")
	maxTokensFlag := flagSet.Int("max-tokens", 0, "Maximum token count, cluster expansion included. 0 means the default.")
	freeFormFlag := flagSet.Bool("free-form", false, "Accept commands missing from the catalog instead of failing.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	catalogPath := *catalogFlag
	if catalogPath == "" {
		catalogPath = *cFlag
	}
	if catalogPath == "" {
		slog.Debug("No catalog path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if !*listFlag && flagSet.NArg() == 0 {
		return nil, false, &ExitError{Code: 2, Message: "nothing to parse: supply arguments after '--' or use -list"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		CatalogPath:   catalogPath,
		Argv:          flagSet.Args(),
		ListOptions:   *listFlag,
		OutputFormat:  strings.ToLower(*formatFlag),
		Color:         *colorFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		MaxDepth:      *maxDepthFlag,
		MaxTokens:     *maxTokensFlag,
		AllowFreeForm: *freeFormFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "catalog", config.CatalogPath, "argc", len(config.Argv))
	return config, false, nil
}
