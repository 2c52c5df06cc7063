package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/specialistvlad/appdescriptor/internal/app"
	"github.com/specialistvlad/appdescriptor/internal/render"
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
	flagSet := flag.NewFlagSet("appdescriptor", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
appdescriptor - Resolves a declarative mobile app build descriptor.

Usage:
  appdescriptor [options] [DESCRIPTOR_PATH]

Arguments:
  DESCRIPTOR_PATH
    Path to a single .hcl/.yaml descriptor or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	descriptorFlag := flagSet.String("descriptor", "", "Path to the descriptor file or directory.")
	dFlag := flagSet.String("d", "", "Path to the descriptor file or directory (shorthand).")
	pluginValuesFlag := flagSet.String("plugin-values", "", "YAML or JSON file overriding plugin values, keyed by plugin namespace.")
	outputFlag := flagSet.String("output", render.FormatText, "Output format. Options: 'text', 'yaml' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "auto", "Log output format. Options: 'auto', 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	failOnRiskFlag := flagSet.Bool("fail-on-risk", false, "Exit with an error when the descriptor has risks, e.g. a release signed with the debug key.")
	lastVersionCodeFlag := flagSet.Int("last-version-code", 0, "Version code of the previous release. The descriptor's must be greater. 0 disables the check.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *descriptorFlag != "" {
		path = *descriptorFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Descriptor path determined.", "path", path)

	if path == "" {
		slog.Debug("No descriptor path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	switch logFormat {
	case "auto":
		logFormat = autoLogFormat()
	case "text", "json":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'auto', 'text' or 'json'"}
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
		DescriptorPath:   path,
		PluginValuesPath: *pluginValuesFlag,
		Output:           strings.ToLower(*outputFlag),
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		FailOnRisk:       *failOnRiskFlag,
		LastVersionCode:  *lastVersionCodeFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// autoLogFormat picks text logs for an interactive terminal and JSON
// otherwise. Logs are written to stderr.
func autoLogFormat() string {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return "text"
	}
	return "json"
}
