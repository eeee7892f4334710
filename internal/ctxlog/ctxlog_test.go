package ctxlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longhike/internal/ctxlog"
)

func TestFromContext_Fallback(t *testing.T) {
	assert.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
}

func TestWithLogger_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger, err := ctxlog.New(&buf, "info", "text")
	require.NoError(t, err)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	assert.Same(t, logger, ctxlog.FromContext(ctx))
}

func TestNew_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := ctxlog.New(&buf, "warn", "json")
	require.NoError(t, err)

	logger.Info("dropped")
	assert.Empty(t, buf.String(), "info is below warn")

	logger.Warn("kept", "steps", 94)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.EqualValues(t, 94, rec["steps"])
}

func TestNew_EmptyMeansDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := ctxlog.New(&buf, "", "")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hello")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=hello")
}

// TestNew_UnknownSetting rejects values instead of silently downgrading them.
func TestNew_UnknownSetting(t *testing.T) {
	cases := []struct {
		name          string
		level, format string
	}{
		{"Level", "verbose", "text"},
		{"Format", "info", "xml"},
		{"UpperCase", "DEBUG", "text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := ctxlog.New(&bytes.Buffer{}, tc.level, tc.format)
			assert.Nil(t, logger)
			assert.ErrorIs(t, err, ctxlog.ErrUnknownSetting)
		})
	}
}
