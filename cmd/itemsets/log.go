package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger returns a text logger writing to w at level; verbose forces debug.
func newLogger(w io.Writer, level string, verbose bool) (*logrus.Logger, error) {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true, DisableColors: true}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose && lvl < logrus.DebugLevel {
		lvl = logrus.DebugLevel
	}
	log.SetLevel(lvl)
	return log, nil
}
