// Where: internal/launcher/environment.go
// What: Virtual environment detection and creation.
// Why: The application must never start against a missing or half-built environment.
package launcher

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/poruru-code/crm-launcher/internal/domain/layout"
	"github.com/poruru-code/crm-launcher/internal/infra/messages"
	"github.com/poruru-code/crm-launcher/internal/infra/runner"
)

// EnvironmentExists reports whether the interpreter marker is present.
func EnvironmentExists(l layout.Layout) bool {
	info, err := os.Stat(l.Interpreter)
	return err == nil && !info.IsDir()
}

// EnsureEnvironment creates the environment unless its marker already exists.
// It reports whether a new environment was created. Every failure wraps
// ErrEnvironmentCreationFailed.
func (l *Launcher) EnsureEnvironment(ctx context.Context, lay layout.Layout, interpreters []string) (bool, error) {
	log := l.deps.Logger.With().Str("env_dir", lay.EnvDir).Logger()
	if EnvironmentExists(lay) {
		log.Debug().Str("interpreter", lay.Interpreter).Msg("environment present")
		return false, nil
	}

	system, err := l.findSystemInterpreter(interpreters)
	if err != nil {
		return false, newCreationError(err)
	}

	l.deps.UI.Step(l.render(messages.Creating, lay, func(d *messages.Data) {
		d.SystemInterpreter = system
	}))
	cmd := runner.Command{Dir: lay.Root, Name: system, Args: []string{"-m", "venv", lay.EnvDir}}
	log.Debug().Str("command", cmd.String()).Msg("creating environment")
	if code, err := l.deps.Runner.Run(ctx, cmd); err != nil {
		log.Debug().Int("exit_code", code).Err(err).Msg("venv failed")
		return false, newCreationError(err)
	}
	if !EnvironmentExists(lay) {
		return false, newCreationError(fmt.Errorf("%w: %s", errMarkerMissing, lay.Interpreter))
	}

	l.deps.UI.Success(l.render(messages.Created, lay, nil))
	return true, nil
}

func (l *Launcher) findSystemInterpreter(candidates []string) (string, error) {
	for _, name := range candidates {
		path, err := l.deps.Runner.LookPath(name)
		if err == nil {
			l.deps.Logger.Debug().Str("name", name).Str("path", path).Msg("system interpreter found")
			return path, nil
		}
		l.deps.Logger.Debug().Str("name", name).Err(err).Msg("system interpreter lookup failed")
	}
	if len(candidates) == 0 {
		return "", errNoSystemInterpreter
	}
	return "", fmt.Errorf("%w (tried %s)", errNoSystemInterpreter, strings.Join(candidates, ", "))
}
