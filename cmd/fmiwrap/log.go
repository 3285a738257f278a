package main

import (
	"io"
	"log/slog"

	"github.com/fmiwrap/fmiwrap-go/pkg/fmi2/logging"
)

func newLogger(w io.Writer, verbose bool) logging.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
