// Where: internal/infra/config/config.go
// What: Optional launcher.yaml next to the launcher binary.
// Why: Tune console behavior only; the on-disk layout stays fixed.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/crm-launcher/internal/meta"
	"gopkg.in/yaml.v3"
)

// File represents launcher.yaml. Every field is optional. Paths and
// interpreters are not configurable.
type File struct {
	Pause    string            `yaml:"pause,omitempty"`
	Messages map[string]string `yaml:"messages,omitempty"`
}

// Path returns the config file location for a launcher root.
func Path(root string) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return "", errRootRequired
	}
	return filepath.Join(root, meta.ConfigFile), nil
}

// Load reads launcher.yaml from root. A missing file yields a zero File and
// found=false; any other failure is returned as an error.
func Load(root string) (cfg File, found bool, err error) {
	path, err := Path(root)
	if err != nil {
		return File{}, false, err
	}
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return File{}, false, nil
	}
	if err != nil {
		return File{}, false, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err = Parse(content)
	if err != nil {
		return File{}, true, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, true, nil
}

// Parse validates and decodes launcher.yaml content.
func Parse(content []byte) (File, error) {
	if err := validate(content); err != nil {
		return File{}, fmt.Errorf("%w: %w", errInvalidConfig, err)
	}

	var cfg File
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("%w: decode yaml: %w", errInvalidConfig, err)
	}
	return cfg, nil
}
