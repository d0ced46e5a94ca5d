// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable dispatcher from argv to the launch flow.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/alecthomas/kong"

	"github.com/poruru-code/crm-launcher/internal/infra/interaction"
	"github.com/poruru-code/crm-launcher/internal/infra/logging"
	"github.com/poruru-code/crm-launcher/internal/infra/runner"
	"github.com/poruru-code/crm-launcher/internal/infra/ui"
	"github.com/poruru-code/crm-launcher/internal/launcher"
	"github.com/poruru-code/crm-launcher/internal/meta"
	"github.com/poruru-code/crm-launcher/internal/version"
)

// Dependencies holds all injected dependencies required for a launch.
// Zero values fall back to the real process environment.
type Dependencies struct {
	Out        io.Writer
	ErrOut     io.Writer
	Stdin      *os.File
	GOOS       string
	Executable func() (string, error)
	Runner     runner.CommandRunner
	Pauser     interaction.Pauser
	IsTerminal func(*os.File) bool
}

// CLI defines the command-line interface parsed by Kong.
// The launcher takes no arguments; the flags only tune console behavior.
type CLI struct {
	NoPause bool             `name:"no-pause" help:"Never wait for Enter before closing"`
	Verbose bool             `short:"v" help:"Print diagnostic logs to stderr"`
	Version kong.VersionFlag `help:"Show version information"`
}

// Run parses args, resolves the launcher directory and launches the
// application. The returned value is the process exit code.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)

	cli := CLI{}
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description(meta.AppDesc),
		kong.Writers(deps.Out, deps.ErrOut),
		kong.Vars{"version": version.Banner()},
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if _, err := parser.Parse(args); err != nil {
		if exitCode >= 0 {
			return exitCode
		}
		return handleParseError(deps.ErrOut, err)
	}
	// --help and --version print and request an exit.
	if exitCode >= 0 {
		return exitCode
	}

	console := ui.NewWithEmoji(deps.Out, deps.ErrOut, deps.GOOS != "windows")
	logger := logging.New(deps.ErrOut, cli.Verbose)

	root, err := ResolveRoot(deps.Executable)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	logger.Debug().Str("root", root).Str("goos", deps.GOOS).Msg("launcher root resolved")

	setup, err := prepare(root, cli, deps, console, logger)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	l := launcher.New(launcher.Dependencies{
		Runner:   deps.Runner,
		UI:       console,
		Pauser:   deps.Pauser,
		Messages: setup.messages,
		Logger:   logger,
	})
	result := l.Launch(context.Background(), setup.options)
	return result.ExitCode
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.GOOS == "" {
		deps.GOOS = runtime.GOOS
	}
	if deps.Executable == nil {
		deps.Executable = os.Executable
	}
	if deps.Runner == nil {
		deps.Runner = runner.ExecRunner{}
	}
	if deps.IsTerminal == nil {
		deps.IsTerminal = interaction.IsTerminal
	}
	if deps.Pauser == nil {
		deps.Pauser = interaction.HuhPauser{
			Fallback: interaction.LinePauser{In: deps.Stdin, Out: deps.ErrOut},
		}
	}
	return deps
}

// exitWithError prints an error message and returns exit code 1.
func exitWithError(errOut io.Writer, err error) int {
	ui.NewWithEmoji(errOut, errOut, false).Error(fmt.Sprintf("%s: %v", meta.AppName, err))
	return 1
}

// handleParseError reports a usage error; the launcher accepts no arguments.
func handleParseError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "%s: error: %v\n", meta.AppName, err)
	fmt.Fprintf(errOut, "Run %s without arguments, or with --help for the available flags.\n", meta.AppName)
	return 1
}
