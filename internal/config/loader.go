package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "dolphin.yaml"

// Load loads the Dolphin Dash configuration.
// Search order: customPath -> ~/.dolphin/configs/dolphin.yaml -> ./configs/dolphin.yaml -> embedded default
func Load(customPath string) (DolphinConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DolphinConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DolphinConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDolphinYAML)
	if err != nil {
		return DefaultDolphinConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// the keys it overrides.
func Parse(data []byte) (DolphinConfig, error) {
	cfg := DefaultDolphinConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c DolphinConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return errors.New("world dimensions must be positive")
	case c.Agent.Width <= 0 || c.Agent.Height <= 0 || c.Agent.Height > c.World.Height:
		return errors.New("agent must fit inside the world")
	case c.Obstacles.Height >= c.World.Height:
		return errors.New("obstacle height must be below world height")
	case c.Tokens.Size*2 > c.World.Height:
		return errors.New("token size must be at most half the world height")
	case c.Obstacles.MinInterval <= 0 || c.Tokens.Interval <= 0:
		return errors.New("spawn intervals must be positive")
	case c.Obstacles.Variants <= 0:
		return errors.New("at least one obstacle variant is required")
	case c.Particles.Decay <= 0:
		return errors.New("particle decay must be positive")
	}
	return nil
}

// WriteYAML writes the configuration to path.
func (c DolphinConfig) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dolphin", "configs", filename)
}
