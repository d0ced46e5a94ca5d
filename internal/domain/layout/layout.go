// Where: internal/domain/layout/layout.go
// What: Fixed on-disk layout of the launcher directory.
// Why: Resolve every path against the launcher directory, never the caller's cwd.
package layout

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/poruru-code/crm-launcher/internal/meta"
)

var (
	errRootRequired    = errors.New("launcher root is required")
	errRootNotAbsolute = errors.New("launcher root must be absolute")
)

// Layout holds absolute paths derived from the launcher directory.
type Layout struct {
	Root        string
	EnvDir      string
	Interpreter string
	EntryFile   string
	LogFile     string
}

// InterpreterRel returns the interpreter location inside an environment for goos.
func InterpreterRel(goos string) string {
	if goos == "windows" {
		return "Scripts/python.exe"
	}
	return "bin/python"
}

// SystemInterpreters lists the interpreters tried, in order, to build the environment.
func SystemInterpreters(goos string) []string {
	if goos == "windows" {
		return []string{"python", "py"}
	}
	return []string{"python3", "python"}
}

// Resolve builds the layout for root on the given operating system.
func Resolve(root, goos string) (Layout, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return Layout{}, errRootRequired
	}
	if !filepath.IsAbs(root) {
		return Layout{}, fmt.Errorf("%w: %s", errRootNotAbsolute, root)
	}
	root = filepath.Clean(root)

	envDir := filepath.Join(root, filepath.FromSlash(meta.EnvDir))
	return Layout{
		Root:        root,
		EnvDir:      envDir,
		Interpreter: filepath.Join(envDir, filepath.FromSlash(InterpreterRel(goos))),
		EntryFile:   filepath.Join(root, filepath.FromSlash(meta.EntryFile)),
		LogFile:     filepath.Join(root, filepath.FromSlash(meta.LogFile)),
	}, nil
}

// Rel returns path relative to the layout root for display, or path itself.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil {
		return path
	}
	return rel
}
