package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/proofline/internal/panel"
)

// BackendConfig describes one external checking backend.
type BackendConfig struct {
	// Name identifies the backend in logs and errors.
	Name string `toml:"name"`

	// Command is the executable to launch. Empty disables the backend.
	Command string `toml:"command"`

	// Args are passed to the command.
	Args []string `toml:"args"`
}

// Enabled returns true if the backend has a command configured.
func (b BackendConfig) Enabled() bool {
	return b.Command != ""
}

// PanelConfig bounds the correction panel.
type PanelConfig struct {
	// MaxIssues caps the issues shown at once.
	MaxIssues int `toml:"max_issues"`

	// PreviewLength bounds the one-line text preview.
	PreviewLength int `toml:"preview_length"`
}

// Config is the assistant's full configuration.
type Config struct {
	Primary   BackendConfig `toml:"primary"`
	Secondary BackendConfig `toml:"secondary"`
	Panel     PanelConfig   `toml:"panel"`

	// Hotkeys maps action names to binding specs like "Cmd+Shift+L".
	Hotkeys map[string]string `toml:"hotkeys"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Primary:   BackendConfig{Name: "harper"},
		Secondary: BackendConfig{Name: "model"},
		Panel: PanelConfig{
			MaxIssues:     panel.MaxVisibleIssues,
			PreviewLength: panel.PreviewMaxLength,
		},
		Hotkeys: map[string]string{
			"fix-line":   "Cmd+Shift+L",
			"next-issue": "Cmd+G",
		},
	}
}

// Load builds the configuration from defaults, an optional TOML file, and
// environment overrides. A missing file yields defaults plus env.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err != nil && os.IsNotExist(err):
			// File doesn't exist, not an error
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, &ParseError{Path: path, Message: err.Error(), Err: err}
			}
		}
	}

	applyEnv(&cfg)
	cfg.normalize()
	return cfg, nil
}

// envPrefix is the environment variable prefix for overrides.
const envPrefix = "PROOFLINE_"

// applyEnv overlays PROOFLINE_* environment variables onto the config.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(envPrefix + "PRIMARY_COMMAND"); ok {
		cfg.Primary.Command = v
	}
	if v, ok := os.LookupEnv(envPrefix + "SECONDARY_COMMAND"); ok {
		cfg.Secondary.Command = v
	}
	if v, ok := os.LookupEnv(envPrefix + "MAX_ISSUES"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Panel.MaxIssues = n
		}
	}
	if v, ok := os.LookupEnv(envPrefix + "PREVIEW_LENGTH"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Panel.PreviewLength = n
		}
	}
}

// normalize replaces unusable limits with defaults.
func (c *Config) normalize() {
	if c.Panel.MaxIssues <= 0 {
		c.Panel.MaxIssues = panel.MaxVisibleIssues
	}
	if c.Panel.PreviewLength <= 0 {
		c.Panel.PreviewLength = panel.PreviewMaxLength
	}
	if c.Hotkeys == nil {
		c.Hotkeys = Default().Hotkeys
	}
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
