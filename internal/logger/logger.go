// Package logger wraps logrus with the process-wide configuration:
// timestamped text output on stderr, level taken from LOG_LEVEL.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. Commands and the server log through it so
// level and format stay consistent across the binary.
var Log = New()

// New builds a logger with the default configuration. LOG_LEVEL
// overrides the info default; unknown values are ignored.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		l.SetLevel(lvl)
	}
	return l
}
