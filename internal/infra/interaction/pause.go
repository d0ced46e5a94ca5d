// Where: internal/infra/interaction/pause.go
// What: Pause prompt using the huh library.
// Why: Give the console a single "Close" button instead of a raw read.
package interaction

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

var runConfirmPrompt = func(title string, ack *bool) error {
	return huh.NewConfirm().
		Title(title).
		Affirmative("Close").
		Negative("").
		Value(ack).
		Run()
}

// HuhPauser implements Pauser with a huh confirm prompt.
// When the prompt cannot run it falls back to Fallback.
type HuhPauser struct {
	Fallback Pauser
}

func (p HuhPauser) Pause(message string) error {
	var ack bool
	err := runConfirmPrompt(message, &ack)
	if err == nil || errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	if p.Fallback == nil {
		return fmt.Errorf("pause prompt: %w", err)
	}
	return p.Fallback.Pause(message)
}
