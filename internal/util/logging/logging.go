// Package logging builds the logrus loggers used by sigbench.
package logging

import (
	"io"

	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Level parses a level name, falling back to info.
func Level(l string) logrus.Level {
	switch l {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

// New returns a logger writing prefixed text to out. When file is not empty,
// every entry at or above level is also appended to it.
func New(out io.Writer, level, file string) *logrus.Logger {
	logger := logrus.New()
	logger.Out = out
	logger.Level = Level(level)
	logger.Formatter = new(prefixed.TextFormatter)

	if file != "" {
		pathMap := lfshook.PathMap{}
		for _, lvl := range logrus.AllLevels {
			if lvl <= logger.Level {
				pathMap[lvl] = file
			}
		}
		logger.Hooks.Add(lfshook.NewHook(pathMap, &logrus.TextFormatter{}))
	}
	return logger
}

// Component returns an entry tagged with the given prefix.
func Component(logger *logrus.Logger, prefix string) *logrus.Entry {
	return logger.WithField("prefix", prefix)
}
