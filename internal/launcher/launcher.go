// Where: internal/launcher/launcher.go
// What: The launch flow: ensure the environment, run the application, report.
// Why: Single place that decides exit codes and what the user sees on failure.
package launcher

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/poruru-code/crm-launcher/internal/domain/layout"
	"github.com/poruru-code/crm-launcher/internal/infra/interaction"
	"github.com/poruru-code/crm-launcher/internal/infra/messages"
	"github.com/poruru-code/crm-launcher/internal/infra/runner"
	"github.com/poruru-code/crm-launcher/internal/infra/ui"
	"github.com/poruru-code/crm-launcher/internal/meta"
)

// Dependencies holds the collaborators of the launch flow.
type Dependencies struct {
	Runner   runner.CommandRunner
	UI       ui.UserInterface
	Pauser   interaction.Pauser
	Messages *messages.Catalog
	Logger   zerolog.Logger
}

// Options describes one launch.
type Options struct {
	Layout             layout.Layout
	SystemInterpreters []string
	// Pause makes failures wait for user acknowledgment before returning.
	Pause bool
}

// Result is the outcome of a launch. Err is nil exactly when ExitCode is 0.
type Result struct {
	ExitCode int
	Err      error
}

// Launcher runs the application through its virtual environment.
type Launcher struct {
	deps Dependencies
}

// New creates a Launcher, filling optional dependencies with no-op defaults.
func New(deps Dependencies) *Launcher {
	if deps.Pauser == nil {
		deps.Pauser = interaction.NopPauser{}
	}
	if deps.Messages == nil {
		deps.Messages = messages.Default()
	}
	return &Launcher{deps: deps}
}

// Launch ensures the environment exists, then runs the entry file with the
// environment's interpreter and waits for it. Environment failures never
// reach the application.
func (l *Launcher) Launch(ctx context.Context, opts Options) Result {
	if l.deps.Runner == nil {
		return l.fail(opts, meta.CreationFailedExitCode, errRunnerNil, messages.CreationFailed)
	}
	lay := opts.Layout

	if _, err := l.EnsureEnvironment(ctx, lay, opts.SystemInterpreters); err != nil {
		return l.fail(opts, meta.CreationFailedExitCode, err, messages.CreationFailed)
	}

	l.deps.UI.Step(l.render(messages.Starting, lay, nil))
	cmd := runner.Command{Dir: lay.Root, Name: lay.Interpreter, Args: []string{lay.EntryFile}}
	l.deps.Logger.Debug().Str("command", cmd.String()).Str("dir", lay.Root).Msg("starting application")

	code, err := l.deps.Runner.Run(ctx, cmd)
	if err == nil && code == 0 {
		l.deps.Logger.Debug().Msg("application exited cleanly")
		return Result{}
	}
	if code == 0 {
		code = 1
	}
	return l.fail(opts, code, &AppExitError{Code: code, Err: err}, messages.AppFailed)
}

func (l *Launcher) fail(opts Options, code int, err error, key string) Result {
	l.deps.Logger.Debug().Err(err).Int("exit_code", code).Msg("launch failed")
	l.deps.UI.Error(l.render(key, opts.Layout, func(d *messages.Data) {
		d.ExitCode = code
		var creation *creationError
		switch {
		case errors.As(err, &creation):
			d.Err = creation.cause
		case key == messages.CreationFailed:
			d.Err = err
		}
	}))
	if opts.Pause {
		if perr := l.deps.Pauser.Pause(l.render(messages.Pause, opts.Layout, nil)); perr != nil {
			l.deps.Logger.Debug().Err(perr).Msg("pause failed")
		}
	}
	return Result{ExitCode: code, Err: err}
}

func (l *Launcher) render(key string, lay layout.Layout, mutate func(*messages.Data)) string {
	data := messages.Data{
		EnvDir:    lay.Rel(lay.EnvDir),
		EntryFile: lay.Rel(lay.EntryFile),
		LogFile:   lay.Rel(lay.LogFile),
	}
	if mutate != nil {
		mutate(&data)
	}
	return l.deps.Messages.Render(key, data)
}
