package runner

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/scaffolder/internal/errors"
)

// captureLogs redirects the default slog logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestRunSuccess(t *testing.T) {
	captureLogs(t)
	err := New(0).Run(context.Background(), "true", t.TempDir())
	require.NoError(t, err)
}

func TestRunNonzeroExit(t *testing.T) {
	captureLogs(t)
	err := New(0).Run(context.Background(), "false", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryGeneration))
	assert.Contains(t, err.Error(), "exit code 1")
}

func TestRunLaunchFailure(t *testing.T) {
	captureLogs(t)
	err := New(0).Run(context.Background(), "definitely-not-a-binary-xyz", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryGeneration))
	assert.Contains(t, err.Error(), "failed to launch")
}

func TestRunTimeout(t *testing.T) {
	captureLogs(t)
	start := time.Now()
	err := New(100 * time.Millisecond).Run(context.Background(), "sleep 5", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not finish in time")
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRunEmptyCommand(t *testing.T) {
	err := New(0).Run(context.Background(), "   ", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty generation command")
}

func TestRunForwardsStdoutAsSingleBlock(t *testing.T) {
	buf := captureLogs(t)
	err := New(0).Run(context.Background(), "echo hello generation world", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hello generation world")
}

func TestRunForwardsStderrOnFailure(t *testing.T) {
	buf := captureLogs(t)
	err := New(0).Run(context.Background(), "ls /definitely-missing-dir-xyz", t.TempDir())
	require.Error(t, err)
	// Streams are forwarded even when the command fails.
	assert.Contains(t, buf.String(), "definitely-missing-dir-xyz")
	assert.Contains(t, buf.String(), "level=ERROR")
}
