// Package ntlog sets up structured logging for the nt command-line tool.
//
// The nestedtext package itself never logs; it is a pure transformation
// library. Logging exists only at the CLI boundary, to report what file
// is being processed and at what level of detail.
package ntlog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Format selects how log records are rendered.
type Format string

const (
	// FormatJSON renders log records as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt renders log records in logfmt (key=value) form.
	FormatLogfmt Format = "logfmt"
)

var (
	// ErrUnknownLevel indicates an unrecognized log level string.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrUnknownFormat indicates an unrecognized log format string.
	ErrUnknownFormat = errors.New("unknown log format")
)

// NewHandler builds a [slog.Handler] from string level/format flags, as
// registered by cmd/nt's --log-level and --log-format flags.
func NewHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	fmtName, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("log format %q: %w", format, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if fmtName == FormatJSON {
		return slog.NewJSONHandler(w, opts), nil
	}
	return slog.NewTextHandler(w, opts), nil
}

// ParseLevel parses a log level string into a [slog.Level].
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}
	return 0, ErrUnknownLevel
}

// ParseFormat parses a log format string into a [Format].
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if f == "" {
		f = FormatLogfmt
	}
	if slices.Contains([]Format{FormatJSON, FormatLogfmt}, f) {
		return f, nil
	}
	return "", ErrUnknownFormat
}
