// Package xlog wires up the structured logger shared by the interpreter,
// the planner and the demo CLI, following the zap setup in the example
// codebase this module's CLI layer takes after: a production config by
// default, debug level under a verbose flag, and zap.NewNop() in tests.
package xlog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger, switching to debug level when verbose
// is set.
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// OrNop returns logger unchanged if non-nil, otherwise a no-op logger —
// every package in this module that accepts an optional *zap.Logger runs
// its input through this so callers never need a nil check of their own.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
