// Package log provides the logging interface used throughout the
// emulator, backed by logrus.
package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is the logging interface that components accept. It is
// satisfied by *logrus.Logger, and by the Null logger for tests.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
}

// New returns a Logger writing to stderr at the default level.
func New() Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// NewDebug returns a Logger with debug output enabled.
func NewDebug() Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	l.SetLevel(logrus.DebugLevel)
	return l
}
