package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the conventional name of the configuration file.
const DefaultFileName = "fixtura.yaml"

// File is the parsed configuration file.
type File struct {
	// Options overrides option defaults by name.
	Options map[string]string `yaml:"options,omitempty"`

	// RootDir is the directory profile files are read from.
	// Relative paths are resolved against the file's own directory.
	RootDir string `yaml:"rootdir,omitempty"`
}

// LoadFile reads and parses a configuration file.
// Returns an error if the file doesn't exist, is malformed or
// contains unknown fields (typos). An empty file yields an empty File.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	// An empty or comment-only file decodes to io.EOF and means no settings.
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if file.RootDir != "" && !filepath.IsAbs(file.RootDir) {
		file.RootDir = filepath.Join(filepath.Dir(path), file.RootDir)
	}

	return &file, nil
}
