package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/coursegen/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "logs", "coursegen.log")
	l, err := NewLoggerTo(&cfg, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)
	l.Info("to file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] to file")
}

func TestLogger_Routing(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	var out, errOut bytes.Buffer
	l, err := NewLoggerTo(&cfg, &out, &errOut)
	require.NoError(t, err)

	l.Info("created %d", 3)
	l.Success("done")
	l.Warn("careful")
	l.Error("broken")
	l.Debug(false, "hidden")
	l.Debug(true, "shown")

	assert.Contains(t, out.String(), "[INFO] created 3")
	assert.Contains(t, out.String(), "[SUCCESS] done")
	assert.Contains(t, out.String(), "[WARN] careful")
	assert.Contains(t, out.String(), "[DEBUG] shown")
	assert.NotContains(t, out.String(), "hidden")
	assert.NotContains(t, out.String(), "broken")
	assert.Contains(t, errOut.String(), "[ERROR] broken")
}
