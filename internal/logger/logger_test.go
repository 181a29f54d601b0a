package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer

	l := NewWithWriter(&buf, slog.LevelInfo)

	l.Debug("hidden")
	l.Info("artifact written", slog.String("file", "all-runs.csv"))

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "artifact written", entry["msg"])
	assert.Equal(t, "all-runs.csv", entry["file"])
}

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "pacer.log")

	l, closer := New(Options{Path: path, Level: slog.LevelDebug})

	l.Debug("starting")

	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(b), `"msg":"starting"`)
}
