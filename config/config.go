// Package config loads the settings of the xref command.
//
// Settings come, by increasing priority, from the defaults, the TOML
// files, a .env file and the environment, and finally the command line
// flags, applied by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/creasty/defaults"
	"github.com/etnz/crossref"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for xref
type Config struct {
	Notes   NotesConfig     `toml:"notes"`
	Logging LoggingConfig   `toml:"logging"`
	Layout  crossref.Layout `toml:"layout"`
}

// NotesConfig locates the note store.
type NotesConfig struct {
	Backend string `toml:"backend" default:"file" validate:"oneof=memory file sqlite"`
	Path    string `toml:"path" validate:"required_unless=Backend memory"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level" default:"info" validate:"oneof=debug info warn error"`
	Pretty bool   `toml:"pretty" default:"true"`
}

// Dir returns the directory of the user's xref files.
func Dir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "xref")
}

// DefaultPath returns the default config file.
func DefaultPath() string { return filepath.Join(Dir(), "config.toml") }

// DefaultNotesPath returns the notes location used when none is configured
// for backend.
func DefaultNotesPath(backend string) string {
	switch backend {
	case "file":
		return filepath.Join(Dir(), "notes.json")
	case "sqlite":
		return filepath.Join(Dir(), "notes.db")
	}
	return ""
}

// NewDefaultConfig returns the configuration without any file.
func NewDefaultConfig() *Config {
	c := &Config{}
	if err := defaults.Set(c); err != nil {
		panic(err) // tags are static
	}
	c.Notes.Path = DefaultNotesPath(c.Notes.Backend)
	return c
}

var validate = validator.New()

// LoadConfig merges the files in paths, in order, over the defaults, then
// applies the environment. Missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()
	// the default path depends on the backend, known once everything is read
	config.Notes.Path = ""

	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// a missing .env is not an error
	_ = godotenv.Load()
	applyEnvOverrides(config)
	if config.Notes.Path == "" {
		config.Notes.Path = DefaultNotesPath(config.Notes.Backend)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if backend := os.Getenv("XREF_NOTES_BACKEND"); backend != "" {
		config.Notes.Backend = backend
	}
	if path := os.Getenv("XREF_NOTES_PATH"); path != "" {
		config.Notes.Path = path
	}
	if level := os.Getenv("XREF_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if cur := os.Getenv("XREF_CURRENCY"); cur != "" {
		config.Layout.Currency = cur
	}
}

// Validate checks the whole configuration, layout included.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
