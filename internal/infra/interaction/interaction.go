// Where: internal/infra/interaction/interaction.go
// What: TTY detection and the pause-before-close prompt.
// Why: Windows consoles close with the process; the user must be able to read the error.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// PausePolicy selects when the launcher waits for the user before exiting.
type PausePolicy string

const (
	PauseAuto   PausePolicy = "auto"
	PauseAlways PausePolicy = "always"
	PauseNever  PausePolicy = "never"
)

var errUnknownPolicy = errors.New("unknown pause policy")

// ParsePausePolicy accepts auto/always/never; empty means auto.
func ParsePausePolicy(value string) (PausePolicy, error) {
	switch PausePolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", PauseAuto:
		return PauseAuto, nil
	case PauseAlways:
		return PauseAlways, nil
	case PauseNever:
		return PauseNever, nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownPolicy, value)
}

// ShouldPause reports whether to wait for acknowledgment on goos.
// auto pauses only on Windows, where the console window closes on exit.
func (p PausePolicy) ShouldPause(goos string, interactive bool) bool {
	if !interactive {
		return false
	}
	switch p {
	case PauseAlways:
		return true
	case PauseNever:
		return false
	default:
		return goos == "windows"
	}
}

// Pauser blocks until the user acknowledges a message.
type Pauser interface {
	Pause(message string) error
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WaitForEnterWithIO prints message to out and reads one line from in.
// EOF counts as acknowledgment.
func WaitForEnterWithIO(in io.Reader, out io.Writer, message string) error {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	_, _ = fmt.Fprintf(out, "%s ", message)
	_, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read acknowledgment: %w", err)
	}
	return nil
}

// LinePauser waits for Enter on In, echoing the prompt to Out.
type LinePauser struct {
	In  io.Reader
	Out io.Writer
}

func (p LinePauser) Pause(message string) error {
	return WaitForEnterWithIO(p.In, p.Out, message)
}

// NopPauser never blocks.
type NopPauser struct{}

func (NopPauser) Pause(string) error { return nil }
