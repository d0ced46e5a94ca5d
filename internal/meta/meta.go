// Where: internal/meta/meta.go
// What: Launcher-local metadata constants.
// Why: Keep names and the default on-disk layout in one place.
package meta

const (
	// Identity
	AppName = "crm-launcher"
	AppDesc = "Prepare the Python environment and start the recruiter CRM."

	// Directory Layout (relative to the launcher directory)
	EnvDir     = ".venv"
	EntryFile  = "app.py"
	LogFile    = "logs/app.log"
	ConfigFile = "launcher.yaml"

	// CreationFailedExitCode is returned when the environment cannot be built.
	CreationFailedExitCode = 1
)
