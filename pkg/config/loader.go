package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Common errors for stub file loading.
var (
	ErrFileNotFound = errors.New("stub file not found")
	ErrEmptyFile    = errors.New("stub file is empty")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
)

// LoadFile reads a Collection from a JSON or YAML file, detected by
// extension (.yaml/.yml for YAML, anything else JSON). The collection is
// structurally validated before being returned.
func LoadFile(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading stub file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var c *Collection
	if ext == ".yaml" || ext == ".yml" {
		c, err = ParseYAML(data)
	} else {
		c, err = ParseJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if result := Validate(c); !result.IsValid() {
		return nil, fmt.Errorf("%s: %s", path, result.Error())
	}
	return c, nil
}

// ParseYAML parses a Collection from YAML bytes.
func ParseYAML(data []byte) (*Collection, error) {
	var c Collection
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &c, nil
}

// ParseJSON parses a Collection from JSON bytes.
func ParseJSON(data []byte) (*Collection, error) {
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return &c, nil
}

// LoadGlob loads every stub file matching the pattern. Patterns may use
// ** for recursive directory matching. Files load in sorted path order so
// route registration order is deterministic. No matches is not an error.
func LoadGlob(pattern string) ([]*Collection, error) {
	var matches []string
	var err error
	if strings.Contains(pattern, "**") {
		matches, err = doublestar.FilepathGlob(pattern)
	} else {
		matches, err = filepath.Glob(pattern)
	}
	if err != nil {
		return nil, fmt.Errorf("expanding glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	collections := make([]*Collection, 0, len(matches))
	for _, match := range matches {
		c, err := LoadFile(match)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}
	return collections, nil
}
