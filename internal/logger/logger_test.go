package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	logger, err := New(true, false)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	debug, err := New(false, true)
	require.NoError(t, err)
	assert.True(t, debug.Core().Enabled(zapcore.DebugLevel))
}

func TestWithRequest(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	WithRequest(logger, "req-123").Info("match run")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-123", entries[0].ContextMap()[FieldRequestID])
}

func TestWithRequest_NilLogger(t *testing.T) {
	logger := WithRequest(nil, "req-123")
	require.NotNil(t, logger)

	// Must not panic.
	logger.Info("noop")
}

func TestWithRequest_EmptyID(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	WithRequest(logger, "").Info("match run")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), FieldRequestID)
}
