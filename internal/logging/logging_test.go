package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToDataDir(t *testing.T) {
	prevDefault := slog.Default()
	prevOutput := log.Writer()
	t.Cleanup(func() {
		slog.SetDefault(prevDefault)
		log.SetOutput(prevOutput)
	})

	dir := t.TempDir()
	closer, err := Init(dir)
	require.NoError(t, err)

	slog.Debug("task added", "task_id", 7)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "logs", FileName))
	require.NoError(t, err)

	line := string(data)
	assert.True(t, strings.Contains(line, "level=DEBUG"), line)
	assert.True(t, strings.Contains(line, "task_id=7"), line)
}

func TestNewRespectsLevel(t *testing.T) {
	var buf strings.Builder
	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
