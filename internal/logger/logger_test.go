package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLoggerCapture(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("poll %s failed: %v", "10.0.0.1", "timeout")
	l.Info("starting poller")
	l.Warn("slow cycle")
	l.Error("transport down")

	require.Len(t, l.Messages, 4)
	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.Equal(t, "poll 10.0.0.1 failed: timeout", l.Messages[0].Message)
	assert.Equal(t, "info", l.Messages[1].Level)
	assert.Equal(t, "warn", l.Messages[2].Level)
	assert.Equal(t, "error", l.Messages[3].Level)
}

func TestBufferLoggerHasLevel(t *testing.T) {
	l := NewBufferLogger()
	assert.False(t, l.HasLevel("debug"))

	l.Debug("message")
	assert.True(t, l.HasLevel("debug"))
	assert.False(t, l.HasLevel("error"))
}

func TestBufferLoggerClear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("one")
	l.Info("two")
	require.Len(t, l.Messages, 2)

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := Noop()

	// Should not panic; messages go nowhere.
	l.Debug("debug %d", 1)
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
}

func TestDefaultLogger(t *testing.T) {
	assert.NotNil(t, Default())
}
