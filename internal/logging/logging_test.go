package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jask/agebook/internal/config"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	l, err := New(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zap.ErrorLevel))
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "agebook.log")
	l, err := New(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)
	l.Debug("person moved", zap.String("id", "1"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"person moved"`)
	require.Contains(t, string(data), `"logger":"agebook"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Path: filepath.Join(t.TempDir(), "x.log"), Level: "chatty"})
	require.Error(t, err)
}
