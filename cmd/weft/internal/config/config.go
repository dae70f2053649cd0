// Package config loads the optional weft.yaml for the demo host.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional weft.yaml configuration.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Inspector InspectorConfig `yaml:"inspector"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	// Name labels the demo counter. Defaults to the last element of
	// the enclosing module path, if any.
	Name string `yaml:"name,omitempty"`
}

// InspectorConfig contains inspector server settings.
type InspectorConfig struct {
	// Addr is the listen address for the tree inspector. Empty
	// disables the inspector unless --inspect is given.
	Addr string `yaml:"addr,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	AppName       string
	InspectorAddr string
}

// LoadOptional reads weft.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "weft.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read weft.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse weft.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads weft.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(dir)
	}

	return &Resolved{
		Root:          dir,
		AppName:       appName,
		InspectorAddr: strings.TrimSpace(cfg.Inspector.Addr),
	}, nil
}

// defaultAppName derives a name from the enclosing go.mod module path,
// falling back to the directory base name.
func defaultAppName(dir string) string {
	base := filepath.Base(dir)
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return base
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return base
	}
	modName, _, ok := module.SplitPathVersion(path)
	if !ok {
		modName = path
	}
	parts := strings.Split(modName, "/")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return base
	}
	return parts[len(parts)-1]
}
