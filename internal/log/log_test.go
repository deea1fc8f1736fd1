package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, Level(false, false))
	assert.Equal(t, slog.LevelDebug, Level(true, false))
	assert.Equal(t, slog.LevelWarn, Level(false, true))
	assert.Equal(t, slog.LevelWarn, Level(true, true), "quiet takes precedence")
}

func TestSetup_DefaultLevel(t *testing.T) {
	Setup(false, false)

	ctx := context.Background()
	handler := slog.Default().Handler()
	assert.True(t, handler.Enabled(ctx, slog.LevelInfo))
	assert.False(t, handler.Enabled(ctx, slog.LevelDebug))
}

func TestSetupWriter(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, true, false)
	slog.Debug("flip", "card", "culture.phishing")
	assert.Contains(t, buf.String(), "card=culture.phishing")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestOpenFile(t *testing.T) {
	w, err := OpenFile("")
	require.NoError(t, err)
	_, err = w.Write([]byte("dropped"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "riskdash.log")
	w, err = OpenFile(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("kept\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kept\n", string(data))
}
