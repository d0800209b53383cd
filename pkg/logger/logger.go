package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used across the application.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// LogrusLogger implements Logger on top of a logrus instance emitting JSON.
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogger creates a new Logger. The level comes from LOG_LEVEL and
// defaults to info when unset or unparseable.
func NewLogger() Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return &LogrusLogger{log: log}
}

// fields turns a flat key/value list into logrus fields. A dangling
// trailing value is kept under the "extra" key instead of being dropped.
func fields(keysAndValues []interface{}) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		f[key] = keysAndValues[i+1]
	}
	if len(keysAndValues)%2 != 0 {
		f["extra"] = keysAndValues[len(keysAndValues)-1]
	}
	return f
}

// Info logs an informational message
func (l *LogrusLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Info(msg)
}

// Error logs an error message
func (l *LogrusLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Error(msg)
}

// Debug logs a debug message
func (l *LogrusLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Debug(msg)
}

// Warn logs a warning message
func (l *LogrusLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Warn(msg)
}
