// Package logger builds the zap loggers used across the engine.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Structured log field keys shared across packages.
const (
	// FieldRequestID is the structured log field key for the match request ID.
	FieldRequestID = "request_id"
	// FieldEntryID is the structured log field key for a catalog entry ID.
	FieldEntryID = "entry_id"
)

// New builds a logger writing to stdout. json selects the JSON encoding over
// console output; debug lowers the level to debug.
func New(json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return logger, nil
}

// WithRequest attaches the request ID field to the logger. A nil logger
// falls back to a no-op logger so call sites never panic.
func WithRequest(logger *zap.Logger, requestID string) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if requestID == "" {
		return logger
	}
	return logger.With(zap.String(FieldRequestID, requestID))
}
