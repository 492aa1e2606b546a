// Package logging builds the diagnostic logger shared across the engine.
// Activity tracking is a separate concern; this is operator-facing output.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stderr with the level taken from the
// LOG_LEVEL environment variable (default info).
func New() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		log.Warnf("invalid LOG_LEVEL %q, defaulting to info", levelStr)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// Quiet returns a logger that discards everything below panic. Used in
// tests and wherever diagnostics are unwanted.
func Quiet() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.PanicLevel)
	return log
}
