package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
		} else {
			assert.NoError(t, err, tc.in)
		}
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNewWritesToDir(t *testing.T) {
	dir := t.TempDir()
	lg := New("debug", dir)
	t.Cleanup(func() { _ = lg.Close() })

	lg.Debugf("heading %d", 180)
	lg.With(slog.String("mode", "ground")).Info("camera switched")

	require.Equal(t, filepath.Join(dir, "flightsim.slog"), lg.LogFile)
	data, err := os.ReadFile(lg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hello logging")
	assert.Contains(t, string(data), "heading 180")
	assert.Contains(t, string(data), `"mode":"ground"`)
}

func TestLevelFiltersMessages(t *testing.T) {
	dir := t.TempDir()
	lg := New("warn", dir)
	t.Cleanup(func() { _ = lg.Close() })

	lg.Infof("dropped %s", "message")
	lg.Warnf("kept %s", "message")

	data, err := os.ReadFile(lg.LogFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped message")
	assert.Contains(t, string(data), "kept message")
}

func TestNilLoggerIsSafe(t *testing.T) {
	var lg *Logger
	assert.NotPanics(t, func() {
		lg.Debug("x")
		lg.Debugf("x %d", 1)
		lg.Info("x")
		lg.Infof("x %d", 1)
		lg.Warnf("x %d", 1)
		assert.Nil(t, lg.With("k", "v"))
		assert.NoError(t, lg.Close())
	})
}
