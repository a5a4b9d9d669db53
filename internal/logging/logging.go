// Package logging builds configured zap loggers for in-repo diagnostics:
// tests, benchmarks, and tools embedding the solvers. Solver behavior never
// depends on it; the rootfind package takes an optional *zap.Logger and
// defaults to a nop one.
package logging

import (
	"strings"

	"github.com/caarlos0/env/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the configuration for the logger.
type Config struct {
	// Level is the minimum log level to emit (debug, info, warn, error).
	Level string `env:"ROOTFIND_LOG_LEVEL" envDefault:"info"`
	// Format is the output format (json, console).
	Format string `env:"ROOTFIND_LOG_FORMAT" envDefault:"json"`
	// Output is the output destination (stdout, stderr, or a file path).
	Output string `env:"ROOTFIND_LOG_OUTPUT" envDefault:"stderr"`
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "json",
		Output: "stderr",
	}
}

// FromEnv builds a Config from the ROOTFIND_LOG_* environment variables,
// falling back to the defaults for anything unset.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// New creates a zap logger with the given configuration. A nil cfg means
// DefaultConfig.
func New(cfg *Config) (*zap.Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var zcfg zap.Config
	switch strings.ToLower(cfg.Format) {
	case "console", "text":
		zcfg = zap.NewDevelopmentConfig()
	default:
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	zcfg.OutputPaths = []string{outputPath(cfg.Output)}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}

// parseLevel converts a string log level to a zapcore.Level. Unknown names
// fall back to info.
func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// outputPath maps an output destination to a zap output path. Anything other
// than stdout or stderr is treated as a file path.
func outputPath(output string) string {
	switch output {
	case "", "stderr":
		return "stderr"
	case "stdout":
		return "stdout"
	default:
		return output
	}
}
