// Package deploy runs the site build/deploy command as a subprocess.
package deploy

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/custodia-labs/quill-cli/internal/core/ports/driven"
	"github.com/custodia-labs/quill-cli/internal/logger"
)

// Ensure Runner implements the interface.
var _ driven.Runner = (*Runner)(nil)

// Runner executes shell commands with combined output capture.
type Runner struct{}

// NewRunner creates a new subprocess runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes command through the platform shell in dir. The context
// bounds execution; on cancellation the subprocess is killed. Output
// is returned even when the command fails so callers can surface the
// build log.
func (r *Runner) Run(ctx context.Context, dir, command string) (string, error) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", command)
	}
	cmd.Dir = dir

	logger.Debug("running %q in %s", command, dir)
	output, err := cmd.CombinedOutput()
	return string(output), err
}
