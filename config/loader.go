package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPaths are searched by LoadDefault, first match wins.
var DefaultPaths = []string{"gpx-track-splitter.yml", ".gpx-track-splitter.yml"}

// Default returns the configuration used when no file is given.
func Default() AppConfig {
	return AppConfig{
		Output: OutputConfig{
			Naming:    NamingIndex,
			Indent:    DefaultIndent,
			Overwrite: true,
		},
		Include: IncludeConfig{
			Waypoints: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault loads the first of DefaultPaths that exists. With none present
// it returns Default.
func LoadDefault() (*AppConfig, error) {
	return loadFirst(DefaultPaths)
}

func loadFirst(paths []string) (*AppConfig, error) {
	for _, p := range paths {
		cfg, err := Load(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	cfg := Default()
	return &cfg, nil
}

// Validate checks the struct tags of every section.
func (c *AppConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c.Output); err != nil {
		return err
	}
	if err := v.Struct(c.Logging); err != nil {
		return err
	}
	return nil
}
