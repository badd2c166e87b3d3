package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/uacscan/internal/app"
	"github.com/vk/uacscan/internal/reportcfg"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("uacscan", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
uacscan - A USB Audio Class descriptor analyzer for lsusb -v dumps.

Usage:
  uacscan [options] [DUMP_PATH]

Arguments:
  DUMP_PATH
    Path to a file containing 'lsusb -v' output. Use '-' (or pipe to
    stdin) to read the dump from standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("file", "", "Path to the lsusb dump file.")
	fFlag := flagSet.String("f", "", "Path to the lsusb dump file (shorthand).")
	formatFlag := flagSet.String("format", "", "Output format. Options: 'full', 'topology', 'report', 'bandwidth' or 'summary'.")
	uacFlag := flagSet.String("uac", "", "Select the configuration with this UAC version. Options: '1.0', '2.0' or '3.0'.")
	reportConfigFlag := flagSet.String("report-config", "", "Path to an optional HCL report configuration file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	quietFlag := flagSet.Bool("q", false, "Suppress all log output below the error level.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *fileFlag != "" {
		path = *fileFlag
	} else if *fFlag != "" {
		path = *fFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Dump path determined.", "path", path)

	format := strings.ToLower(*formatFlag)
	if format != "" && !validFormat(format) {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf(
			"invalid format: must be one of '%s'", strings.Join(reportcfg.ValidFormats, "', '"))}
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
		InputPath:        path,
		Format:           format,
		UACVersion:       *uacFlag,
		ReportConfigPath: *reportConfigFlag,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		Quiet:            *quietFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func validFormat(format string) bool {
	for _, f := range reportcfg.ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
