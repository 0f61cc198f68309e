package app

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/jpamies/worldcup-squad-selector/pkg/logging"
)

// NewLogger creates a configured logger based on the application configuration.
// Log level precedence (highest to lowest):
//  1. --log-level flag or LOG_LEVEL
//  2. -q/--quiet flag (warn)
//  3. -v/--verbose flag (debug)
//  4. Default (info)
func NewLogger(config *Config) zerolog.Logger {
	level := determineLogLevel(config, os.Stderr)

	return logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		AddCaller: level == "debug" || level == "trace",
		NoColor:   config.NoColor,
	})
}

// determineLogLevel applies the precedence rules. Warnings about the
// configuration go to warn.
func determineLogLevel(config *Config, warn io.Writer) string {
	if config.LogLevel != "" {
		level, ok := validLogLevel(config.LogLevel)
		if !ok {
			_, _ = fmt.Fprintf(warn, "Warning: invalid log level %q, using %q\n", config.LogLevel, level)
		}
		return level
	}

	switch {
	case config.Verbose && config.Quiet:
		_, _ = fmt.Fprintln(warn, "Warning: both --verbose and --quiet specified, using --quiet")
		return "warn"
	case config.Quiet:
		return "warn"
	case config.Verbose:
		return "debug"
	}
	return "info"
}

// validLogLevel returns the level and true when it is one the CLI accepts,
// "info" and false otherwise.
func validLogLevel(level string) (string, bool) {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level, true
	}
	return "info", false
}
