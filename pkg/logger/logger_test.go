package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/manifest/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		Raw      string
		Expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.Expected, logger.ParseLevel(tc.Raw), tc.Raw)
	}
}

func TestInitTo(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := logger.InitTo(&buf, "warn")
	l.Info("dropped")
	slog.Warn("kept", slog.String("uid", "42"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	record := make(map[string]any)
	require.NoError(t, sonic.Unmarshal(lines[0], &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "42", record["uid"])
}
