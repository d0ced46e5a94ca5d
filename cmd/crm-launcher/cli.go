// Where: cmd/crm-launcher/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"runtime"

	"github.com/poruru-code/crm-launcher/internal/command"
	"github.com/poruru-code/crm-launcher/internal/infra/interaction"
	"github.com/poruru-code/crm-launcher/internal/infra/runner"
)

var (
	executable = os.Executable
	goos       = runtime.GOOS
)

// buildDependencies wires the launcher to the real process: its own
// executable path, the os/exec runner and the console streams.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:        os.Stdout,
		ErrOut:     os.Stderr,
		Stdin:      os.Stdin,
		GOOS:       goos,
		Executable: executable,
		Runner:     runner.ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr},
		Pauser: interaction.HuhPauser{
			Fallback: interaction.LinePauser{In: os.Stdin, Out: os.Stderr},
		},
		IsTerminal: interaction.IsTerminal,
	}
}
