package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w at the named level
func New(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %v", level, err)
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return log, nil
}

// Stderr returns a logger on standard error, falling back to info on a bad level
func Stderr(level string) *logrus.Logger {
	log, err := New(level, os.Stderr)
	if err != nil {
		log, _ = New("info", os.Stderr)
		log.WithError(err).Warn("falling back to info logging")
	}
	return log
}

// Discard returns a logger that drops everything, for tests and quiet runs
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
