// Where: internal/infra/ui/console.go
// What: Console output helpers for the launcher.
// Why: Keep status lines uniform between the POSIX and Windows consoles.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// UserInterface is the output surface the launch flow writes to.
type UserInterface interface {
	Step(msg string)
	Success(msg string)
	Warn(msg string)
	Error(msg string)
}

// Console provides helper methods for formatted output.
// Errors and warnings go to ErrOut when it is set.
type Console struct {
	Out          io.Writer
	ErrOut       io.Writer
	EmojiEnabled bool
}

// NewWithEmoji creates a new Console with explicit emoji settings.
func NewWithEmoji(out, errOut io.Writer, enabled bool) *Console {
	return &Console{Out: out, ErrOut: errOut, EmojiEnabled: enabled}
}

// Step prints a progress line with an arrow.
// Example: ➜ Creating environment in .venv
func (c *Console) Step(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("➜", ""), msg)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.prefix("✅", "[ok] "), msg)
}

// Warn prints a warning message.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.errWriter(), "%s%s\n", c.prefix("⚠️", "[warn] "), msg)
}

// Error prints an error message. Multi-line messages keep their indentation.
func (c *Console) Error(msg string) {
	lines := strings.Split(strings.TrimRight(msg, "\n"), "\n")
	fmt.Fprintf(c.errWriter(), "%s%s\n", c.prefix("❌", "[error] "), lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(c.errWriter(), "   %s\n", line)
	}
}

func (c *Console) errWriter() io.Writer {
	if c.ErrOut != nil {
		return c.ErrOut
	}
	return c.Out
}

func (c *Console) prefix(emoji, plain string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return plain
	}
	return emoji + " "
}
