package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := New(Config{
		Level:    "debug",
		Dir:      tmpDir,
		Filename: "test.log",
	})

	assert.NoError(t, err)
	assert.NotNil(t, logger)

	err = logger.Close()
	assert.NoError(t, err)
}

func TestLogger_WritesJSONToFile(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := New(Config{
		Level:    "info",
		Dir:      tmpDir,
		Filename: "app.log",
	})
	require.NoError(t, err)

	logger.Info("user %s logged in", "alice")
	logger.InfoTag("HTTP", "GET /artist -> %d", 200)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(filepath.Join(tmpDir, "app.log"))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "user alice logged in")
	assert.Contains(t, content, "[HTTP] GET /artist -> 200")
}

func TestLogger_LevelFilter(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := New(Config{
		Level:    "error",
		Dir:      tmpDir,
		Filename: "app.log",
	})
	require.NoError(t, err)

	logger.Debug("noise")
	logger.Info("still noise")
	logger.Error("real problem")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(filepath.Join(tmpDir, "app.log"))
	require.NoError(t, err)

	content := string(data)
	assert.NotContains(t, content, "noise")
	assert.Contains(t, content, "real problem")
}

func TestLogger_ErrorFile(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := New(Config{
		Level:    "info",
		Dir:      tmpDir,
		Filename: "app.log",
	})
	require.NoError(t, err)

	logger.Info("plain info")
	logger.Error("boom")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(filepath.Join(tmpDir, "error.log"))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "boom")
	assert.NotContains(t, content, "plain info")
}

func TestRotatingFile_Rotate(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rot.log")

	rf, err := newRotatingFile(path, 128, 2)
	require.NoError(t, err)

	line := strings.Repeat("x", 60) + "\n"
	for i := 0; i < 10; i++ {
		_, err := rf.Write([]byte(line))
		require.NoError(t, err)
	}
	require.NoError(t, rf.Close())

	// primary file plus numbered backups, nothing past maxBackups
	_, err = os.Stat(path)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(tmpDir, "rot.1.log"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(tmpDir, "rot.3.log"))
	assert.True(t, os.IsNotExist(err), fmt.Sprintf("rot.3.log should not exist: %v", err))
}
