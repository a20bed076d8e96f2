package defense

import (
	"unicode/utf8"

	"github.com/vovakirdan/elemental-defense/internal/config"
	"github.com/vovakirdan/elemental-defense/internal/core"
)

// Sprite is a drawable entity look: world size plus terminal glyph and color.
type Sprite struct {
	Width  float64
	Height float64
	Glyph  rune
	Color  core.Color
}

// Assets is the read-only sprite table shared by all entities of a run.
// It is built once from config and never mutated afterwards.
type Assets struct {
	Hero       Sprite
	Enemies    []Sprite
	Background Sprite
}

// NewAssets builds the sprite table from configuration.
func NewAssets(cfg config.DefenseConfig) *Assets {
	a := &Assets{
		Hero:    spriteFromConfig(cfg.Sprites.Hero, '▲'),
		Enemies: make([]Sprite, 0, len(cfg.Sprites.Enemies)),
		Background: Sprite{
			Width:  cfg.World.Width,
			Height: cfg.Background.StripHeight,
			Glyph:  firstRune(cfg.Background.Glyph, '·'),
			Color:  core.ParseColor(cfg.Background.Color),
		},
	}
	for _, sc := range cfg.Sprites.Enemies {
		a.Enemies = append(a.Enemies, spriteFromConfig(sc, '◆'))
	}
	if len(a.Enemies) == 0 {
		a.Enemies = append(a.Enemies, Sprite{Width: 40, Height: 40, Glyph: '◆', Color: core.ColorRed})
	}
	return a
}

// EnemyVariants returns the size of the enemy palette.
func (a *Assets) EnemyVariants() int {
	return len(a.Enemies)
}

// Enemy returns the sprite for an enemy variant.
func (a *Assets) Enemy(variant int) Sprite {
	if variant < 0 || variant >= len(a.Enemies) {
		return a.Enemies[0]
	}
	return a.Enemies[variant]
}

func spriteFromConfig(sc config.SpriteConfig, fallback rune) Sprite {
	return Sprite{
		Width:  sc.Width,
		Height: sc.Height,
		Glyph:  firstRune(sc.Glyph, fallback),
		Color:  core.ParseColor(sc.Color),
	}
}

func firstRune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
