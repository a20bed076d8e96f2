// Package config provides YAML-based game configuration loading and
// difficulty management for Elemental Defense.
package config

// DefenseConfig contains all tunable configuration for Elemental Defense.
// Spell stats and status-effect durations are rules of the game and live
// with the game code, not here.
type DefenseConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Unlocks    UnlockConfig     `yaml:"unlocks"`
	Background BackgroundConfig `yaml:"background"`
	Sprites    SpritesConfig    `yaml:"sprites"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulation playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed       float64 `yaml:"speed"`        // World units per tick
	Health      int     `yaml:"health"`       // Starting health
	MaxCooldown int     `yaml:"max_cooldown"` // Ticks between shots
	SpellSpeed  float64 `yaml:"spell_speed"`  // Upward spell speed per tick
	OffsetX     float64 `yaml:"offset_x"`     // Spawn x = width/2 - offset_x
	OffsetY     float64 `yaml:"offset_y"`     // Spawn y = height - offset_y
}

// EnemyConfig defines enemy parameters.
type EnemyConfig struct {
	Size              float64 `yaml:"size"`
	Health            int     `yaml:"health"`
	SpawnMarginRight  float64 `yaml:"spawn_margin_right"`  // Excluded strip on the right edge
	MinSpeed          float64 `yaml:"min_speed"`           // Lower bound of base speed
	MinSpeedSpread    float64 `yaml:"min_speed_spread"`    // Minimum width of the speed range
	SpeedScoreDivisor float64 `yaml:"speed_score_divisor"` // Upper bound = score / divisor
}

// SpawnerConfig defines enemy spawn timing.
type SpawnerConfig struct {
	Interval    int `yaml:"interval"`     // Ticks between spawns
	MinInterval int `yaml:"min_interval"` // Floor after difficulty reduction
}

// ScoringConfig defines score and damage rules.
type ScoringConfig struct {
	KillPoints   int `yaml:"kill_points"`
	EscapeDamage int `yaml:"escape_damage"`
}

// UnlockConfig defines the high scores required to use each spell.
type UnlockConfig struct {
	Ice  int `yaml:"ice"`
	Wind int `yaml:"wind"`
}

// BackgroundConfig defines the scrolling corridor strip.
type BackgroundConfig struct {
	ScrollSpeed float64 `yaml:"scroll_speed"`
	StripHeight float64 `yaml:"strip_height"`
	LineEvery   float64 `yaml:"line_every"` // World units between floor marks
	Glyph       string  `yaml:"glyph"`
	Color       string  `yaml:"color"`
}

// SpriteConfig describes one sprite: its world size and terminal look.
type SpriteConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
}

// SpritesConfig lists the sprites used by the game.
type SpritesConfig struct {
	Hero    SpriteConfig   `yaml:"hero"`
	Enemies []SpriteConfig `yaml:"enemies"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the speed upper bound at max difficulty
	SpawnReduction  int     `yaml:"spawn_reduction"`  // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
