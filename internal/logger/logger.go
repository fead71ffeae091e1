// Package logger builds the process-wide zap logger used by the CLI.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance.
var Logger *zap.Logger

// New builds a production (JSON) or development (console) logger at the
// given level. An empty level selects info in production and debug otherwise.
func New(production bool, level string) (*zap.Logger, error) {
	var config zap.Config

	if production {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logger: level %q: %w", level, err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// Logs go to stderr so stdout carries only the report.
	config.OutputPaths = []string{"stderr"}

	return config.Build()
}

// Init initializes the global logger.
func Init(production bool, level string) error {
	l, err := New(production, level)
	if err != nil {
		return err
	}
	Logger = l

	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Get returns the global logger instance, or a no-op logger before Init.
func Get() *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}

	return Logger
}
