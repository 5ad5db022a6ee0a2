// Package settings loads the user settings source. It is independent of the
// payload emitter.
package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	v1 "github.com/infracollect/emitter/apis/v1"
	"github.com/spf13/afero"
)

// DefaultName is the source name looked up when none is given.
const DefaultName = "config"

// Extensions are tried in order when a source name has no known extension.
var Extensions = []string{".yaml", ".yml", ".json"}

var ErrNotFound = errors.New("settings source not found")

var (
	defaultValidator = validator.New(validator.WithRequiredStructEnabled())
)

// Parse decodes YAML or JSON settings and validates them.
func Parse(data []byte) (v1.Settings, error) {
	var s v1.Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return v1.Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := defaultValidator.Struct(s); err != nil {
		return v1.Settings{}, fmt.Errorf("failed to validate settings: %w", err)
	}

	return s, nil
}

// Resolve finds the file backing the source name in dir. A name that already
// carries one of Extensions is used as is.
func Resolve(fs afero.Fs, dir, name string) (string, error) {
	if name == "" {
		name = DefaultName
	}

	candidates := []string{filepath.Join(dir, name)}
	if !slices.Contains(Extensions, filepath.Ext(name)) {
		candidates = candidates[:0]
		for _, ext := range Extensions {
			candidates = append(candidates, filepath.Join(dir, name+ext))
		}
	}

	for _, candidate := range candidates {
		ok, err := afero.Exists(fs, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", candidate, err)
		}
		if ok {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %q in %s", ErrNotFound, name, dir)
}

// Load resolves and parses the named source. It returns the path it read.
func Load(fs afero.Fs, dir, name string) (v1.Settings, string, error) {
	path, err := Resolve(fs, dir, name)
	if err != nil {
		return v1.Settings{}, "", err
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return v1.Settings{}, "", fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return v1.Settings{}, "", fmt.Errorf("settings file %s: %w", path, err)
	}

	return s, path, nil
}
