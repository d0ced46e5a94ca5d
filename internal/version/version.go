// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report which launcher build is installed next to the application.
package version

import (
	"fmt"
	"runtime/debug"

	"github.com/poruru-code/crm-launcher/internal/meta"
)

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the short VCS revision of the running binary.
// It returns "dev" when no build info or revision is embedded, and appends
// "(dirty)" for builds from a modified tree.
func GetVersion() string {
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	switch {
	case revision == "":
		return "dev"
	case modified:
		return fmt.Sprintf("%s (dirty)", revision)
	default:
		return revision
	}
}

// Banner returns the "<name> <version>" line printed by --version.
func Banner() string {
	return meta.AppName + " " + GetVersion()
}
