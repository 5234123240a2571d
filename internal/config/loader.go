package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBoulder loads Boulder Dash configuration.
// Search order: customPath -> ~/.boulder/configs/boulder.yaml -> ./configs/boulder.yaml -> embedded default
func LoadBoulder(customPath string) (BoulderConfig, error) {
	// Missing keys keep their defaults
	cfg := DefaultBoulderConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("boulder.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "boulder.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBoulderYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBoulderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped so the next location in the search order is used.
func tryLoad(path string) (BoulderConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BoulderConfig{}, false
	}
	cfg := DefaultBoulderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BoulderConfig{}, false
	}
	if cfg.Validate() != nil {
		return BoulderConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".boulder", "configs", filename)
}

// ApplyBoulderPreset modifies the config based on a difficulty preset.
func ApplyBoulderPreset(cfg *BoulderConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)

	// Presets set the time budget and physics speed
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.TimeScale = 1.5
		cfg.Timing.SimEveryTicks = 14
	case DifficultyNormal:
		cfg.Difficulty.TimeScale = 1.0
		cfg.Timing.SimEveryTicks = 12
	case DifficultyHard:
		cfg.Difficulty.TimeScale = 0.75
		cfg.Timing.SimEveryTicks = 9
	case DifficultyFixed:
		cfg.Difficulty.TimeScale = 1.0
	}
}
