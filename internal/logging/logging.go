// Package logging builds the process logger. Output goes to stderr because
// stdout carries the stdio MCP transport.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production zap logger at the given level. Console encoding
// is used unless json is set.
func New(level string, json bool) (*zap.Logger, error) {
	atomicLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logConfig := zap.NewProductionConfig()
	logConfig.Level = atomicLevel
	logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logConfig.OutputPaths = []string{"stderr"}
	logConfig.ErrorOutputPaths = []string{"stderr"}
	if !json {
		logConfig.Encoding = "console"
		logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return logConfig.Build()
}

// ParseLevel accepts debug, info, warn (or warning) and error.
func ParseLevel(level string) (zap.AtomicLevel, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "":
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	case "warning":
		level = "warn"
	case "debug", "info", "warn", "error":
	default:
		return zap.AtomicLevel{}, fmt.Errorf("unsupported log level %q: expected debug, info, warn or error", level)
	}
	return zap.ParseAtomicLevel(level)
}
