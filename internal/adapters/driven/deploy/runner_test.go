package deploy

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell semantics differ on windows")
	}

	runner := NewRunner()

	output, err := runner.Run(context.Background(), t.TempDir(), "echo built")
	require.NoError(t, err)
	assert.Equal(t, "built\n", output)
}

func TestRunner_Run_UsesWorkingDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell semantics differ on windows")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0644))
	runner := NewRunner()

	output, err := runner.Run(context.Background(), dir, "ls")
	require.NoError(t, err)
	assert.Equal(t, "marker.txt", strings.TrimSpace(output))
}

func TestRunner_Run_FailureReturnsOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell semantics differ on windows")
	}

	runner := NewRunner()

	output, err := runner.Run(context.Background(), t.TempDir(), "echo oops; exit 3")
	assert.Error(t, err)
	assert.Contains(t, output, "oops")
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell semantics differ on windows")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	runner := NewRunner()

	_, err := runner.Run(ctx, t.TempDir(), "sleep 10")
	assert.Error(t, err)
}
