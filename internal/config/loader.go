package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defenseFile = "defense.yaml"

// LoadDefense loads Elemental Defense configuration.
// Search order: customPath -> ~/.arcade/configs/defense.yaml -> ./configs/defense.yaml -> embedded default.
// Files override the built-in defaults field by field.
func LoadDefense(customPath string) (DefenseConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadDefenseFile(customPath)
		if err != nil {
			return DefaultDefenseConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := loadDefenseFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultDefenseConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("defense"), &cfg); err != nil {
		return DefaultDefenseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ResolveDefensePath returns the file LoadDefense would read, or "" when
// the embedded default is used.
func ResolveDefensePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func loadDefenseFile(path string) (DefenseConfig, error) {
	cfg := DefaultDefenseConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists implicit config locations in priority order.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if userCfgPath := userConfigPath(defenseFile); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", defenseFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c DefenseConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return errors.New("world dimensions must be positive")
	case c.Enemies.Size <= 0:
		return errors.New("enemy size must be positive")
	case c.Enemies.SpeedScoreDivisor <= 0:
		return errors.New("speed_score_divisor must be positive")
	case c.Spawner.Interval <= 0:
		return errors.New("spawn interval must be positive")
	case c.Player.MaxCooldown < 0:
		return errors.New("max_cooldown cannot be negative")
	case len(c.Sprites.Enemies) == 0:
		return errors.New("at least one enemy sprite is required")
	}
	return nil
}

// ApplyDefensePreset modifies the config based on a difficulty preset.
func ApplyDefensePreset(cfg *DefenseConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
