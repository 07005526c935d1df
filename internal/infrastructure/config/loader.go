package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadDisplay loads display.yaml
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	data, err := fs.ReadFile(l.fsys, "display.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read display.yaml: %w", err)
	}

	var cfg DisplayConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse display.yaml: %w", err)
	}

	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		return nil, fmt.Errorf("display.yaml: screen dimensions must be positive")
	}
	if cfg.Framerate <= 0 {
		return nil, fmt.Errorf("display.yaml: framerate must be positive")
	}

	return &cfg, nil
}
