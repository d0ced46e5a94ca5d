// Where: cmd/crm-launcher/main.go
// What: Launcher entrypoint.
// Why: Prepare the environment and start the CRM with configured dependencies.
package main

import (
	"os"

	"github.com/poruru-code/crm-launcher/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
