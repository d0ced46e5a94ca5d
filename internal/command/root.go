// Where: internal/command/root.go
// What: Launcher directory resolution and per-launch setup.
// Why: Everything is anchored at the binary's own directory, never the caller's cwd.
package command

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/poruru-code/crm-launcher/internal/domain/layout"
	"github.com/poruru-code/crm-launcher/internal/infra/config"
	"github.com/poruru-code/crm-launcher/internal/infra/interaction"
	"github.com/poruru-code/crm-launcher/internal/infra/messages"
	"github.com/poruru-code/crm-launcher/internal/infra/ui"
	"github.com/poruru-code/crm-launcher/internal/launcher"
	"github.com/poruru-code/crm-launcher/internal/meta"
)

var errExecutableRequired = errors.New("executable resolver is required")

// ResolveRoot returns the absolute directory containing the running
// launcher, with symlinks evaluated.
func ResolveRoot(executable func() (string, error)) (string, error) {
	if executable == nil {
		return "", errExecutableRequired
	}
	path, err := executable()
	if err != nil {
		return "", fmt.Errorf("locate launcher: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return "", fmt.Errorf("resolve launcher dir: %w", err)
	}
	return abs, nil
}

type launchSetup struct {
	options  launcher.Options
	messages *messages.Catalog
}

// prepare loads launcher.yaml and turns it into launch options. A broken
// config is reported and replaced by defaults.
func prepare(root string, cli CLI, deps Dependencies, console ui.UserInterface, logger zerolog.Logger) (launchSetup, error) {
	cfg, found, err := config.Load(root)
	if err != nil {
		console.Warn(fmt.Sprintf("Ignoring %s: %v", meta.ConfigFile, err))
		cfg = config.File{}
	}
	logger.Debug().Bool("found", found).Msg("config loaded")

	lay, err := layout.Resolve(root, deps.GOOS)
	if err != nil {
		return launchSetup{}, err
	}

	catalog, err := messages.New(cfg.Messages)
	if err != nil {
		console.Warn(fmt.Sprintf("Ignoring messages in %s: %v", meta.ConfigFile, err))
		catalog = messages.Default()
	}

	policy, err := interaction.ParsePausePolicy(cfg.Pause)
	if err != nil {
		console.Warn(fmt.Sprintf("Ignoring pause in %s: %v", meta.ConfigFile, err))
		policy = interaction.PauseAuto
	}
	if cli.NoPause {
		policy = interaction.PauseNever
	}
	pause := policy.ShouldPause(deps.GOOS, deps.IsTerminal(deps.Stdin))

	logger.Debug().
		Str("interpreter", lay.Interpreter).
		Str("entry", lay.EntryFile).
		Str("pause_policy", string(policy)).
		Bool("pause", pause).
		Msg("launch options")

	return launchSetup{
		options: launcher.Options{
			Layout:             lay,
			SystemInterpreters: layout.SystemInterpreters(deps.GOOS),
			Pause:              pause,
		},
		messages: catalog,
	}, nil
}
