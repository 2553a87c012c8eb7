package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config directories.
const ConfigFile = "asteroids.yaml"

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.asteroids/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
// Files are decoded on top of the built-in defaults, so partial files only override what they name.
func Load(customPath string) (AsteroidsConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultAsteroidsConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, SourceCustom, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", ConfigFile)); ok {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultAsteroidsConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// tryFile decodes a config file, reporting false on any read, parse or validation failure.
func tryFile(path string) (AsteroidsConfig, bool) {
	cfg := DefaultAsteroidsConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Obstacles.BaseCount = 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Obstacles.BaseCount = 4
		cfg.Difficulty.SpeedStep = 0.15
	case DifficultyFixed:
		cfg.Difficulty.SpeedStep = 0
	}
}
