package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"sigbench/internal/bench"
)

// App bundles the logger and benchmark harness for the CLI.
type App struct {
	Config *Config
	Logger *logrus.Logger
	Bench  *bench.Harness
}

// RunBenchmark runs every phase. In strict mode any failed operation turns
// into an error after all phases have been reported.
func (a *App) RunBenchmark() ([]bench.Result, error) {
	results, err := a.Bench.Run()
	if err != nil {
		return results, err
	}

	var failures uint64
	for _, r := range results {
		failures += r.Failures
	}
	if failures > 0 {
		a.Logger.WithField("failures", failures).Warn("Benchmark finished with failures")
		if a.Config.Strict {
			return results, fmt.Errorf("%d operations failed", failures)
		}
	}
	return results, nil
}
