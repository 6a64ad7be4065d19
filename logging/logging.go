// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package logging builds the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// New creates a logger writing to stderr and installs it as the slog default.
//
// Format "json" produces JSON lines, "text" produces key=value lines with
// source info, and "auto" picks text when stderr is a terminal and JSON
// otherwise.
func New(level, format string) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format, isatty.IsTerminal(os.Stderr.Fd()))
}

// NewWithWriter is New with an explicit writer and terminal flag.
func NewWithWriter(w io.Writer, level, format string, terminal bool) *slog.Logger {
	text := strings.EqualFold(format, "text") ||
		(!strings.EqualFold(format, "json") && terminal)

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: text,
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
// Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
