// Package runner executes external generation commands with a bounded wall
// clock and full output capture.
package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"git.home.luguber.info/inful/scaffolder/internal/errors"
	"git.home.luguber.info/inful/scaffolder/internal/logfields"
)

// DefaultTimeout bounds a single generation command.
const DefaultTimeout = 10 * time.Minute

// Runner launches command lines in a working directory.
type Runner struct {
	timeout time.Duration
}

// New creates a runner. A zero timeout means DefaultTimeout.
func New(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{timeout: timeout}
}

// Run executes the command line rooted at workDir and blocks until exit or
// the deadline. The command string is tokenized on whitespace. Captured
// stdout/stderr are forwarded after completion as single joined blocks, even
// when the command failed. The process is killed when the deadline elapses.
func (r *Runner) Run(ctx context.Context, command, workDir string) error {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return errors.New(errors.CategoryGeneration, "empty generation command")
	}

	tctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(tctx, argv[0], argv[1:]...)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Info("Executing generation command", logfields.Command(command), logfields.Dir(workDir))
	err := cmd.Run()

	// Streams are drained in full by the buffers above; forward whatever the
	// command produced regardless of outcome.
	if out := strings.TrimSpace(stdout.String()); out != "" {
		slog.Info(out)
	}
	if out := strings.TrimSpace(stderr.String()); out != "" {
		slog.Error(out)
	}

	switch {
	case tctx.Err() == context.DeadlineExceeded:
		return errors.Newf(errors.CategoryGeneration,
			"command did not finish in time (%s): %s", r.timeout, command)
	case err == nil:
		return nil
	default:
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			return errors.Newf(errors.CategoryGeneration,
				"command ended with exit code %d: %s", exitErr.ExitCode(), command)
		}
		return errors.Wrap(err, errors.CategoryGeneration, "failed to launch generation command")
	}
}
