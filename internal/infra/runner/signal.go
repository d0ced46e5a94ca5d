// Where: internal/infra/runner/signal.go
// What: Interrupt handling while a child process runs.
// Why: Ctrl+C belongs to the child; the launcher must outlive it to report its status.
package runner

import (
	"os"
	"os/signal"
)

// holdInterrupts catches os.Interrupt for the lifetime of a child process.
// Handled (not ignored) signals reset to default in the child on exec.
func holdInterrupts() func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
