package logger

// Package logger holds the module-wide zerolog logger. Library code logs
// through Logger(); binaries reconfigure the sink once at startup.

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

// Logger returns the module logger.
func Logger() zerolog.Logger {
	return logger
}

// SetOutput redirects log output to w.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Disable turns logging off.
func Disable() {
	logger = zerolog.Nop()
}
