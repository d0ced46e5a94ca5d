// Where: internal/architecture/layering_test.go
// What: Layer and cycle guards for launcher internal packages.
// Why: Keep the layout model pure and the launch flow independent of the CLI.
package architecture

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const internalImportPrefix = "github.com/poruru-code/crm-launcher/internal/"

// sourceImports maps each non-test source file (relative to internal/) to its imports.
func sourceImports(t *testing.T) map[string][]string {
	t.Helper()
	internalRoot := resolveInternalRoot(t)
	fset := token.NewFileSet()
	out := map[string][]string{}

	err := filepath.WalkDir(internalRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(internalRoot, path)
		if err != nil {
			return err
		}
		file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, imp := range file.Imports {
			out[filepath.ToSlash(rel)] = append(out[filepath.ToSlash(rel)], strings.Trim(imp.Path.Value, "\""))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("scan internal packages: %v", err)
	}
	return out
}

func TestLayeringRules(t *testing.T) {
	t.Parallel()

	violations := []string{}
	for rel, imports := range sourceImports(t) {
		source := layerOf(rel)
		for _, importPath := range imports {
			if !strings.HasPrefix(importPath, internalImportPrefix) {
				continue
			}
			if violatesRule(source, layerOf(strings.TrimPrefix(importPath, internalImportPrefix))) {
				violations = append(violations, rel+" -> "+importPath)
			}
		}
	}
	if len(violations) > 0 {
		sort.Strings(violations)
		t.Fatalf("layering rule violations:\n%s", strings.Join(violations, "\n"))
	}
}

func TestNoInternalImportCycles(t *testing.T) {
	t.Parallel()

	graph := map[string]map[string]struct{}{}
	for rel, imports := range sourceImports(t) {
		pkg := filepath.ToSlash(filepath.Dir(rel))
		if graph[pkg] == nil {
			graph[pkg] = map[string]struct{}{}
		}
		for _, importPath := range imports {
			if strings.HasPrefix(importPath, internalImportPrefix) {
				graph[pkg][strings.TrimPrefix(importPath, internalImportPrefix)] = struct{}{}
			}
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := map[string]int{}
	var cycle []string
	var visit func(pkg string, path []string) bool
	visit = func(pkg string, path []string) bool {
		switch state[pkg] {
		case visiting:
			cycle = append(path, pkg)
			return true
		case done:
			return false
		}
		state[pkg] = visiting
		deps := make([]string, 0, len(graph[pkg]))
		for dep := range graph[pkg] {
			deps = append(deps, dep)
		}
		sort.Strings(deps)
		for _, dep := range deps {
			if visit(dep, append(path, pkg)) {
				return true
			}
		}
		state[pkg] = done
		return false
	}

	pkgs := make([]string, 0, len(graph))
	for pkg := range graph {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	for _, pkg := range pkgs {
		if visit(pkg, nil) {
			t.Fatalf("import cycle: %s", strings.Join(cycle, " -> "))
		}
	}
}

func resolveInternalRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	return filepath.Clean(filepath.Join(wd, ".."))
}

// layerOf returns the top-level directory under internal/.
func layerOf(rel string) string {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	return strings.TrimSpace(parts[0])
}

func violatesRule(source, imported string) bool {
	switch source {
	case "meta", "version":
		return imported != "meta"
	case "domain":
		return imported == "infra" || imported == "launcher" || imported == "command"
	case "infra":
		return imported == "launcher" || imported == "command"
	case "launcher":
		return imported == "command"
	default:
		return false
	}
}
