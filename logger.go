package aprsgo

import (
	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used by the client and tools. Fields may
// be nil when there is nothing structured to attach.
type Logger interface {
	Debug(fields map[string]interface{}, args ...interface{})
	Info(fields map[string]interface{}, args ...interface{})
	Warn(fields map[string]interface{}, args ...interface{})
	Error(fields map[string]interface{}, args ...interface{})
}

// logrusLogger is the default Logger backed by logrus
type logrusLogger struct {
	l *logrus.Logger
}

// NewLogger creates the default logger
func NewLogger() Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return &logrusLogger{l: l}
}

// NewLoggerWith wraps an existing logrus logger
func NewLoggerWith(l *logrus.Logger) Logger {
	return &logrusLogger{l: l}
}

func (g *logrusLogger) entry(fields map[string]interface{}) *logrus.Entry {
	if fields == nil {
		return logrus.NewEntry(g.l)
	}
	return g.l.WithFields(logrus.Fields(fields))
}

func (g *logrusLogger) Debug(fields map[string]interface{}, args ...interface{}) {
	g.entry(fields).Debug(args...)
}

func (g *logrusLogger) Info(fields map[string]interface{}, args ...interface{}) {
	g.entry(fields).Info(args...)
}

func (g *logrusLogger) Warn(fields map[string]interface{}, args ...interface{}) {
	g.entry(fields).Warn(args...)
}

func (g *logrusLogger) Error(fields map[string]interface{}, args ...interface{}) {
	g.entry(fields).Error(args...)
}
