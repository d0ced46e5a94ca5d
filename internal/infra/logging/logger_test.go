// Where: internal/infra/logging/logger_test.go
// What: Tests for the diagnostic logger.
// Why: Quiet by default, detailed with --verbose.
package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debug().Str("path", ".venv").Msg("checking environment")
	logger.Error().Msg("boom")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)
	logger.Debug().Str("path", ".venv").Msg("checking environment")

	got := buf.String()
	for _, want := range []string{"checking environment", "path=.venv", "app=crm-launcher"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}
