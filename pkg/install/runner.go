package install

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/themeup/pkg/logging"
)

// Runner runs external commands
type Runner interface {
	// Run executes the command, streaming its output
	Run(ctx context.Context, name string, args ...string) error

	// Output executes the command and returns its standard output
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner that streams to the process stdout/stderr
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	logger := logging.GetLogger("install.runner")
	logger.Info().Str("command", commandLine(name, args)).Msg("Running command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// Output implements Runner
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	logger := logging.GetLogger("install.runner")
	logger.Debug().Str("command", commandLine(name, args)).Msg("Capturing command output")

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = r.Stderr
	err := cmd.Run()
	return stdout.String(), err
}

func commandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
