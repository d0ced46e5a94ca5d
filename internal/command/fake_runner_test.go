package command

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
	interpreter string
	appCode     int
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if path, ok := f.paths[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("look up %s: %w", name, exec.ErrNotFound)
}

func (f *fakeRunner) Run(_ context.Context, cmd runner.Command) (int, error) {
	f.calls = append(f.calls, cmd)
	if len(cmd.Args) >= 2 && cmd.Args[0] == "-m" && cmd.Args[1] == "venv" {
		if err := os.MkdirAll(filepath.Dir(f.interpreter), 0o755); err != nil {
			return 1, err
		}
		return 0, os.WriteFile(f.interpreter, nil, 0o755)
	}
	if f.appCode != 0 {
		return f.appCode, fmt.Errorf("run %s: exit status %d", cmd.Name, f.appCode)
	}
	return 0, nil
}

type countingPauser struct{ count int }

func (p *countingPauser) Pause(string) error {
	p.count++
	return nil
}
