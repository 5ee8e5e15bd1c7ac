// Package logging builds the structured logger used by the tracker.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pkordes/workout-tracker/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger configured from cfg and a Closer releasing its
// output. With cfg.LogFile set, logs go to a size-rotated file (and to
// stdout as well when cfg.LogToStdout is true).
func New(cfg config.Config) (*slog.Logger, io.Closer) {
	if cfg.LogFile == "" {
		return slog.New(NewHandler(os.Stdout, cfg.LogLevel, cfg.LogFormat)), nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:  cfg.LogFile,
		MaxSize:   50, // megabytes
		LocalTime: false,
		Compress:  true,
	}
	var w io.Writer = file
	if cfg.LogToStdout {
		w = io.MultiWriter(os.Stdout, file)
	}
	return slog.New(NewHandler(w, cfg.LogLevel, cfg.LogFormat)), file
}

// NewHandler returns a JSON handler, or a text handler when format is
// "text", writing to w. Unknown levels fall back to info.
func NewHandler(w io.Writer, level, format string) slog.Handler {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
