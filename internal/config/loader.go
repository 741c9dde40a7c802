package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "duckstack.yaml"

// Load loads the duck-stack configuration.
// Search order: customPath -> ~/.duckstack/configs/duckstack.yaml ->
// ./configs/duckstack.yaml -> embedded default -> hardcoded default.
// Files are decoded over Default(), so a partial file only overrides the
// keys it names.
func Load(customPath string) (DuckStackConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultDuckStackYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (DuckStackConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports values that would break the simulation.
func (c DuckStackConfig) Validate() error {
	switch {
	case c.Viewport.MinWidth <= 0 || c.Viewport.MaxWidth < c.Viewport.MinWidth:
		return fmt.Errorf("viewport width range [%v, %v] is invalid", c.Viewport.MinWidth, c.Viewport.MaxWidth)
	case c.Viewport.Height <= 0:
		return fmt.Errorf("viewport height must be positive, got %v", c.Viewport.Height)
	case c.Duck.Width <= 0 || c.Duck.Height <= 0:
		return fmt.Errorf("duck size %vx%v must be positive", c.Duck.Width, c.Duck.Height)
	case c.Merge.Threshold < 1:
		return fmt.Errorf("merge threshold must be at least 1, got %d", c.Merge.Threshold)
	case c.Merge.LevelUpRatio <= 0 || c.Merge.LevelUpRatio > 1:
		return fmt.Errorf("level_up_ratio must be in (0, 1], got %v", c.Merge.LevelUpRatio)
	case c.Collision.HitTolerance <= 0:
		return fmt.Errorf("hit_tolerance must be positive, got %v", c.Collision.HitTolerance)
	case c.Wobble.StiffnessLoss < 0 || c.Wobble.StiffnessLoss >= 1:
		return fmt.Errorf("stiffness_loss must be in [0, 1), got %v", c.Wobble.StiffnessLoss)
	case c.Difficulty.StartLevel < 0:
		return fmt.Errorf("start_level must not be negative, got %d", c.Difficulty.StartLevel)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duckstack", "configs", filename)
}
