package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a text logger for development and a JSON logger otherwise.
func New(env string) *logrus.Logger {
	return NewWithOutput(env, os.Stdout)
}

func NewWithOutput(env string, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	if env == "development" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetLevel(logrus.InfoLevel)
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return l
}

// Discard is a logger for tests.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
