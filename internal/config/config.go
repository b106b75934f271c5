// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for the
// onepublish TUI.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - path in ONEPUBLISH_CONFIG
//   - ~/.onepublish/config.toml
//   - ~/.onepublish/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete onepublish-tui configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Projects is the ordered list shown in the repository list.
	Projects []Project `toml:"projects" json:"projects"`

	// UI holds interface behavior settings.
	UI UIConfig `toml:"ui" json:"ui"`

	// Overlay tunes the highlight overlay animation.
	Overlay OverlayConfig `toml:"overlay" json:"overlay"`
}

// Project is one configured publish target.
type Project struct {
	// Name is the display name, unique within the list.
	Name string `toml:"name" json:"name"`
	// Path is the project file or directory handed to the provider.
	Path string `toml:"path" json:"path"`
	// Provider is the build-tool provider id: "dotnet", "cargo", "go", "java".
	Provider string `toml:"provider" json:"provider"`
	// Profile optionally names a dotnet publish profile (.pubxml).
	Profile string `toml:"profile" json:"profile"`
}

// UIConfig contains interface behavior settings.
type UIConfig struct {
	// ReduceMotion collapses animations to instant snaps. The
	// ONEPUBLISH_REDUCE_MOTION environment variable overrides it.
	ReduceMotion bool `toml:"reduce_motion" json:"reduce_motion"`
	// MouseEnabled turns pointer tracking on (default true).
	MouseEnabled bool `toml:"mouse_enabled" json:"mouse_enabled"`
}

// OverlayConfig exposes the overlay's main timing constants. Zero values
// mean "use the built-in default".
type OverlayConfig struct {
	// GlowDurationMs is the selection glow decay duration.
	GlowDurationMs float64 `toml:"glow_duration_ms" json:"glow_duration_ms"`
	// DynamicsDecayMs is how long motion effects persist without new motion.
	DynamicsDecayMs float64 `toml:"dynamics_decay_ms" json:"dynamics_decay_ms"`
	// ConvergeEpsilon is the sub-pixel distance treated as arrival.
	ConvergeEpsilon float64 `toml:"converge_epsilon" json:"converge_epsilon"`
}

// KnownProviders are the provider ids a project may reference.
var KnownProviders = []string{"dotnet", "cargo", "go", "java"}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		UI: UIConfig{
			ReduceMotion: false,
			MouseEnabled: true,
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// ConfigDir returns the onepublish configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".onepublish"), nil
}

// Load reads the configuration from the standard locations, falling back
// to defaults when no file exists.
func Load() (*Config, error) {
	if path, ok := ResolvePath(); ok {
		return LoadFromPath(path)
	}
	return finalize(Default())
}

// ResolvePath returns the config file Load would read, or false when no
// file exists and defaults apply.
func ResolvePath() (string, bool) {
	if path := os.Getenv("ONEPUBLISH_CONFIG"); path != "" {
		return path, true
	}

	dir, err := ConfigDir()
	if err != nil {
		return "", false
	}

	for _, name := range []string{"config.toml", "config.json"} {
		path := filepath.Join(dir, name)
		if _, statErr := os.Stat(path); statErr == nil {
			return path, true
		}
	}
	return "", false
}

// LoadFromPath loads the configuration from a specific file with full
// validation. JSON is detected by extension; everything else parses as
// TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode JSON config: %w", err)
		}
	} else {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode TOML config: %w", err)
		}
	}

	return finalize(cfg)
}

func finalize(cfg *Config) (*Config, error) {
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies ONEPUBLISH_* environment variables on top of
// the file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ONEPUBLISH_REDUCE_MOTION"); v != "" {
		c.UI.ReduceMotion = isTruthy(v)
	}
	if v := os.Getenv("ONEPUBLISH_NO_MOUSE"); v != "" {
		c.UI.MouseEnabled = !isTruthy(v)
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		if p.Name == "" {
			return fmt.Errorf("project %d: name is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("project %q: duplicate name", p.Name)
		}
		seen[p.Name] = true

		if p.Path == "" {
			return fmt.Errorf("project %q: path is required", p.Name)
		}
		if !knownProvider(p.Provider) {
			return fmt.Errorf("project %q: unknown provider %q", p.Name, p.Provider)
		}
	}

	if c.Overlay.GlowDurationMs < 0 {
		return fmt.Errorf("overlay.glow_duration_ms must not be negative")
	}
	if c.Overlay.DynamicsDecayMs < 0 {
		return fmt.Errorf("overlay.dynamics_decay_ms must not be negative")
	}
	if c.Overlay.ConvergeEpsilon < 0 {
		return fmt.Errorf("overlay.converge_epsilon must not be negative")
	}
	return nil
}

func knownProvider(id string) bool {
	for _, known := range KnownProviders {
		if id == known {
			return true
		}
	}
	return false
}
