// Where: internal/infra/runner/runner.go
// What: External command execution for the launcher.
// Why: Keep os/exec behind an interface so the launch flow is testable.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ExitCodeNotFound is reported when the executable cannot be started at all.
const ExitCodeNotFound = 127

// Command describes a single child process invocation.
type Command struct {
	Dir  string
	Name string
	Args []string
}

func (c Command) String() string {
	return fmt.Sprintf("%s %v", c.Name, c.Args)
}

// CommandRunner defines the interface for executing external commands.
type CommandRunner interface {
	// Run waits for the command and returns its exit code. A non-nil error
	// means the process did not run to completion or exited non-zero.
	Run(ctx context.Context, cmd Command) (int, error)
	// LookPath resolves an executable name against PATH.
	LookPath(name string) (string, error)
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
// Standard streams default to the launcher's own.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, c Command) (int, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = orReader(r.Stdin, os.Stdin)
	cmd.Stdout = orWriter(r.Stdout, os.Stdout)
	cmd.Stderr = orWriter(r.Stderr, os.Stderr)

	stop := holdInterrupts()
	defer stop()

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	return exitCode(err), fmt.Errorf("run %s: %w", c.Name, err)
}

func (r ExecRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("look up %s: %w", name, err)
	}
	return path, nil
}

// exitCode maps a Run error onto a process exit status.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
		// killed by a signal
		return 1
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) || errors.Is(err, os.ErrNotExist) {
		return ExitCodeNotFound
	}
	return 1
}

func orReader(r io.Reader, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w io.Writer, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
