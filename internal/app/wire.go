package app

import (
	"io"

	"github.com/sirupsen/logrus"

	"sigbench/internal/bench"
	"sigbench/internal/util/logging"
)

// New constructs the dependency graph from cfg. Benchmark lines go to out,
// log entries to logOut.
func New(cfg *Config, out, logOut io.Writer, opts ...bench.Option) *App {
	logger := logging.New(logOut, cfg.LogLevel, cfg.LogFile)
	return NewWithLogger(cfg, logger, out, opts...)
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *Config, logger *logrus.Logger, out io.Writer, opts ...bench.Option) *App {
	logging.Component(logger, "app").WithFields(logrus.Fields{
		"iterations": cfg.Iterations,
		"message":    cfg.Message,
		"log":        cfg.LogLevel,
		"log-file":   cfg.LogFile,
		"strict":     cfg.Strict,
	}).Debug("Config")

	return &App{
		Config: cfg,
		Logger: logger,
		Bench:  bench.New(cfg.Bench(), logging.Component(logger, "bench"), out, opts...),
	}
}
