// Package logging configures the structured logger shared by the CLI and
// the simulation loop. It wraps log/slog with a text handler on stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable holding the default level.
const EnvLevel = "KINELAB_LOG_LEVEL"

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// FromEnv returns a stderr logger at the level named by KINELAB_LOG_LEVEL,
// or WARN when unset so command output stays clean.
func FromEnv() *slog.Logger {
	level, err := ParseLevel(os.Getenv(EnvLevel))
	if err != nil {
		level = slog.LevelWarn
	}
	return New(os.Stderr, level)
}

// ParseLevel accepts DEBUG, INFO, WARN (or WARNING) and ERROR in any case.
// The empty string means WARN.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING", "":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
}

// WrapError wraps an error with additional context information.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
