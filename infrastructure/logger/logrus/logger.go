// ABOUTME: Logrus logger implementation with JSON output for production use
// ABOUTME: Maps the core Logger interface onto logrus structured fields

package logrus

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLogger implements the Logger interface using logrus.
type LogrusLogger struct {
	logger *logrus.Logger
}

// NewLogrusLogger creates a logrus-backed logger emitting JSON to stdout.
// Level accepts the standard logrus level names; unknown values fall back
// to info.
func NewLogrusLogger(level string) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	return &LogrusLogger{logger: l}
}

// Debug logs a debug message with structured fields.
func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields.
func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields.
func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields.
func (l *LogrusLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}
