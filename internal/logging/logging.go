// Package logging builds the process logger: JSON records to stdout and,
// optionally, appended to a file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Sink owns the logger, its adjustable level and the log file if any.
type Sink struct {
	Logger *slog.Logger

	level *slog.LevelVar
	file  *os.File
}

// New opens path (creating parent directories) and fans records out to
// stdout and the file. If the file cannot be opened the sink logs to
// stdout only and says so.
func New(level, path string, stdout io.Writer) *Sink {
	s := &Sink{level: &slog.LevelVar{}}
	s.level.Set(ParseLevel(level))

	w := stdout
	var openErr error
	if path != "" {
		s.file, openErr = openAppend(path)
		if openErr == nil {
			w = io.MultiWriter(stdout, s.file)
		}
	}

	s.Logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: s.level,
	}))
	if openErr != nil {
		s.Logger.Warn("log file unavailable, logging to stdout only", "path", path, "error", openErr)
	}
	return s
}

func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
}

// SetLevel changes the level of an existing sink.
func (s *Sink) SetLevel(raw string) {
	s.level.Set(ParseLevel(raw))
}

// Close closes the log file, if one was opened.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// ParseLevel maps a case-insensitive level name to a slog level.
// Unknown names are info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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
