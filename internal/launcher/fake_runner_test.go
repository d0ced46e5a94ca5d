package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/poruru-code/crm-launcher/internal/infra/runner"
)

type fakeRunner struct {
	paths       map[string]string
	calls       []runner.Command
	venvCode    int
	venvErr     error
	skipMarker  bool
	appCode     int
	appErr      error
	interpreter string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if path, ok := f.paths[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("look up %s: %w", name, exec.ErrNotFound)
}

func (f *fakeRunner) Run(_ context.Context, cmd runner.Command) (int, error) {
	f.calls = append(f.calls, cmd)
	if isVenv(cmd) {
		if f.venvErr != nil {
			return f.venvCode, f.venvErr
		}
		if !f.skipMarker {
			if err := os.MkdirAll(filepath.Dir(f.interpreter), 0o755); err != nil {
				return 1, err
			}
			if err := os.WriteFile(f.interpreter, []byte("#!/bin/sh\n"), 0o755); err != nil {
				return 1, err
			}
		}
		return 0, nil
	}
	return f.appCode, f.appErr
}

func (f *fakeRunner) venvCalls() int {
	n := 0
	for _, c := range f.calls {
		if isVenv(c) {
			n++
		}
	}
	return n
}

func (f *fakeRunner) appCalls() []runner.Command {
	var out []runner.Command
	for _, c := range f.calls {
		if !isVenv(c) {
			out = append(out, c)
		}
	}
	return out
}

func isVenv(cmd runner.Command) bool {
	return len(cmd.Args) >= 2 && cmd.Args[0] == "-m" && cmd.Args[1] == "venv"
}

type recordingUI struct {
	steps, successes, warns, errs []string
}

func (u *recordingUI) Step(msg string)    { u.steps = append(u.steps, msg) }
func (u *recordingUI) Success(msg string) { u.successes = append(u.successes, msg) }
func (u *recordingUI) Warn(msg string)    { u.warns = append(u.warns, msg) }
func (u *recordingUI) Error(msg string)   { u.errs = append(u.errs, msg) }

type countingPauser struct{ count int }

func (p *countingPauser) Pause(string) error {
	p.count++
	return nil
}
