package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var std = newStd()

func newStd() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// SetVerbose sets the logging verbosity. If true, all log levels are displayed.
func SetVerbose(v bool) {
	if v {
		std.SetLevel(logrus.DebugLevel)
	} else {
		std.SetLevel(logrus.InfoLevel)
	}
}

// IsVerbose returns true if verbose logging is enabled.
func IsVerbose() bool {
	return std.IsLevelEnabled(logrus.DebugLevel)
}

// SetFormat switches between "text" and "json" output.
func SetFormat(format string) {
	switch format {
	case "json":
		std.SetFormatter(&logrus.JSONFormatter{})
	default:
		std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// SetOutput redirects all log output.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// DisableLogs disables all logging.
func DisableLogs() {
	std.SetOutput(io.Discard)
}

// Module returns an entry tagged with the component name, the way each
// provider in the directory service logs.
func Module(name string) *logrus.Entry {
	return std.WithField("module", name)
}

// WithField returns an entry carrying a single structured field.
func WithField(key string, value interface{}) *logrus.Entry {
	return std.WithField(key, value)
}

// Debugf logs a debug message if verbose is true.
func Debugf(format string, args ...interface{}) {
	std.Debugf(format, args...)
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	std.Infof(format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	std.Warnf(format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	std.Errorf(format, args...)
}

// Fatalf logs an error message and exits the program.
func Fatalf(format string, args ...interface{}) {
	std.Errorf(format, args...)
	os.Exit(1)
}
