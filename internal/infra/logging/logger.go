// Where: internal/infra/logging/logger.go
// What: Diagnostic logger for the launcher.
// Why: Keep --verbose tracing off the status lines the user normally sees.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/poruru-code/crm-launcher/internal/meta"
)

// New returns a console logger writing to out. Without verbose the logger
// is disabled and costs nothing.
func New(out io.Writer, verbose bool) zerolog.Logger {
	if !verbose || out == nil {
		return zerolog.Nop()
	}
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(output).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("app", meta.AppName).
		Logger()
}
