// Where: internal/infra/messages/messages.go
// What: User-visible launcher messages rendered from templates.
// Why: Allow launcher.yaml to reword console output without touching the flow.
package messages

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Message keys.
const (
	Creating       = "creating"
	Created        = "created"
	CreationFailed = "creation_failed"
	Starting       = "starting"
	AppFailed      = "app_failed"
	Pause          = "pause"
)

var errUnknownKey = errors.New("unknown message key")

var defaults = map[string]string{
	Creating:       `Virtual environment not found, creating {{ .EnvDir }} with {{ .SystemInterpreter | default "python" }}...`,
	Created:        `Virtual environment ready: {{ .EnvDir }}`,
	CreationFailed: "Failed to create the virtual environment in {{ .EnvDir }}.\n{{ with .Err }}Cause: {{ . }}\n{{ end }}Make sure Python {{ .MinPython }}+ is installed and available in PATH.",
	Starting:       `Starting {{ .EntryFile | base }}...`,
	AppFailed:      "The application exited with code {{ .ExitCode }}.\nSee {{ .LogFile }} for details.",
	Pause:          `Press Enter to close...`,
}

// Data is the template context for every message.
type Data struct {
	EnvDir            string
	EntryFile         string
	LogFile           string
	SystemInterpreter string
	MinPython         string
	ExitCode          int
	Err               error
}

// Catalog holds parsed message templates.
type Catalog struct {
	templates map[string]*template.Template
}

// New parses the default templates with overrides applied on top.
func New(overrides map[string]string) (*Catalog, error) {
	sources := make(map[string]string, len(defaults))
	for key, text := range defaults {
		sources[key] = text
	}
	for key, text := range overrides {
		if _, ok := defaults[key]; !ok {
			return nil, fmt.Errorf("%w: %s", errUnknownKey, key)
		}
		sources[key] = text
	}

	c := &Catalog{templates: make(map[string]*template.Template, len(sources))}
	for _, key := range sortedKeys(sources) {
		tmpl, err := template.New(key).Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(sources[key])
		if err != nil {
			return nil, fmt.Errorf("parse message %s: %w", key, err)
		}
		c.templates[key] = tmpl
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(nil)
	if err != nil {
		panic(err)
	}
	return c
})

// Default returns the built-in catalog. It is parsed once and shared.
func Default() *Catalog {
	return defaultCatalog()
}

// Render executes the template for key. A template that fails to render
// falls back to the built-in text so the user always sees a message.
func (c *Catalog) Render(key string, data Data) string {
	if data.MinPython == "" {
		data.MinPython = "3.10"
	}
	tmpl, ok := c.templates[key]
	if !ok {
		return key
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		if fallback, ok := Default().templates[key]; ok && fallback != tmpl {
			buf.Reset()
			if fallback.Execute(&buf, data) == nil {
				return strings.TrimRight(buf.String(), "\n")
			}
		}
		return key
	}
	return strings.TrimRight(buf.String(), "\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
