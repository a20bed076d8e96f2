package config

import (
	_ "embed"
)

//go:embed defaults/defense.yaml
var defaultDefenseYAML []byte

// DefaultDefenseConfig returns the built-in Elemental Defense configuration.
// It mirrors defaults/defense.yaml and is used when the embedded file
// cannot be parsed.
func DefaultDefenseConfig() DefenseConfig {
	enemy := func(glyph, color string) SpriteConfig {
		return SpriteConfig{Width: 40, Height: 40, Glyph: glyph, Color: color}
	}

	return DefenseConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Speed:       5,
			Health:      100,
			MaxCooldown: 20,
			SpellSpeed:  7,
			OffsetX:     15,
			OffsetY:     100,
		},
		Enemies: EnemyConfig{
			Size:              30,
			Health:            100,
			SpawnMarginRight:  100,
			MinSpeed:          0.7,
			MinSpeedSpread:    0.3,
			SpeedScoreDivisor: 200,
		},
		Spawner: SpawnerConfig{
			Interval:    60,
			MinInterval: 15,
		},
		Scoring: ScoringConfig{
			KillPoints:   10,
			EscapeDamage: 20,
		},
		Unlocks: UnlockConfig{
			Ice:  100,
			Wind: 200,
		},
		Background: BackgroundConfig{
			ScrollSpeed: 2,
			StripHeight: 600,
			LineEvery:   75,
			Glyph:       "·",
			Color:       "gray",
		},
		Sprites: SpritesConfig{
			Hero: SpriteConfig{Width: 40, Height: 40, Glyph: "▲", Color: "bright_blue"},
			Enemies: []SpriteConfig{
				enemy("◆", "red"),
				enemy("●", "magenta"),
				enemy("■", "bright_red"),
				enemy("♣", "green"),
				enemy("♠", "bright_magenta"),
				enemy("♦", "yellow"),
				enemy("✦", "bright_yellow"),
				enemy("☠", "white"),
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnReduction:  30,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "defense":
		return defaultDefenseYAML
	default:
		return nil
	}
}
