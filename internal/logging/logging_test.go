package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	l := New(slog.LevelWarn)
	assert.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	assert.NotNil(t, l)
	assert.NotPanics(t, func() {
		l.Info("discarded", "error", "boom")
	})
}
