package config

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w at the level named by LOG_LEVEL
// (debug, info, warn, error). Unknown levels fall back to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}

// LogFile opens LOG_FILE for appending. Terminal hosts log there so log
// lines never land in the frame. Without LOG_FILE it returns io.Discard.
func LogFile() (io.WriteCloser, error) {
	path := GetEnv("LOG_FILE", "")
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
