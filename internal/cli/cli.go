package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/droidspec/internal/app"
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

// stringList is a flag.Value collecting every occurrence of a flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("droidspec", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
droidspec - Validates Android application build descriptors and renders Gradle build scripts.

Usage:
  droidspec [options] [DESCRIPTOR_PATH...]
  droidspec -init [-o build.hcl]

Arguments:
  DESCRIPTOR_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	var overrides stringList
	descriptorFlag := flagSet.String("descriptor", "", "Path to the descriptor file or directory.")
	dFlag := flagSet.String("d", "", "Path to the descriptor file or directory (shorthand).")
	ambientFlag := flagSet.String("ambient", "", "Path to a TOML file with framework values.")
	flagSet.Var(&overrides, "set", "Override a framework value, e.g. 'versionCode=3'. Repeatable.")
	namespaceFlag := flagSet.String("namespace", "", "Name framework references are resolved under. Defaults to 'flutter'.")
	emitFlag := flagSet.String("emit", app.EmitKotlin, "Output format. Options: 'kts', 'json', 'hcl' or 'none'.")
	outputFlag := flagSet.String("o", "", "Write output to this file instead of stdout.")
	keepRefsFlag := flagSet.Bool("keep-refs", false, "Keep framework references verbatim in the Kotlin script.")
	strictFlag := flagSet.Bool("strict", false, "Treat validation warnings as errors.")
	initFlag := flagSet.Bool("init", false, "Interactively scaffold a new descriptor.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFileFlag := flagSet.String("log-file", "", "Write logs to a rotating file instead of stderr.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	if *descriptorFlag != "" {
		paths = append(paths, *descriptorFlag)
	}
	if *dFlag != "" {
		paths = append(paths, *dFlag)
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Descriptor paths determined.", "paths", paths)

	if len(paths) == 0 && !*initFlag {
		slog.Debug("No descriptor path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if len(paths) > 0 && *initFlag {
		return nil, false, &ExitError{Code: 2, Message: "-init does not take descriptor paths"}
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
		DescriptorPaths: paths,
		AmbientPath:     *ambientFlag,
		Overrides:       overrides,
		Namespace:       *namespaceFlag,
		Emit:            strings.ToLower(*emitFlag),
		OutputPath:      *outputFlag,
		KeepReferences:  *keepRefsFlag,
		Strict:          *strictFlag,
		Init:            *initFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		LogFile:         *logFileFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
