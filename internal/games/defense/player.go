package defense

import (
	"math"

	"github.com/vovakirdan/elemental-defense/internal/config"
	"github.com/vovakirdan/elemental-defense/internal/core"
)

// Player is the caster at the bottom of the playfield.
// It owns its live spells exclusively.
type Player struct {
	X, Y        float64 // Top-left position in world units
	Width       float64 // From the hero sprite
	Height      float64
	Speed       float64 // Horizontal world units per tick
	Health      int
	MaxHealth   int
	Score       int
	Spell       SpellType
	Cooldown    int // Ticks until the next shot is allowed
	MaxCooldown int
	SpellSpeed  float64
	Spells      []Spell

	worldW float64
}

// NewPlayer creates a player at the spawn point.
func NewPlayer(cfg config.DefenseConfig, hero Sprite) *Player {
	return &Player{
		X:           cfg.World.Width/2 - cfg.Player.OffsetX,
		Y:           cfg.World.Height - cfg.Player.OffsetY,
		Width:       hero.Width,
		Height:      hero.Height,
		Speed:       cfg.Player.Speed,
		Health:      cfg.Player.Health,
		MaxHealth:   cfg.Player.Health,
		Spell:       SpellFire,
		MaxCooldown: cfg.Player.MaxCooldown,
		SpellSpeed:  cfg.Player.SpellSpeed,
		Spells:      make([]Spell, 0, 16),
		worldW:      cfg.World.Width,
	}
}

// Move shifts the player by a direction scaled to its speed.
// Diagonals are normalized; only the horizontal component moves the player.
func (p *Player) Move(dx, dy float64) {
	if dx != 0 && dy != 0 {
		dx /= math.Hypot(dx, dy)
	}
	p.X += dx * p.Speed
	p.X = core.ClampF(p.X, 0, math.Max(0, p.worldW-p.Width))
}

// Shoot casts the selected spell from the top center of the player.
// Returns false while the cooldown is running.
func (p *Player) Shoot() bool {
	if p.Cooldown > 0 {
		return false
	}
	p.Spells = append(p.Spells, NewSpell(p.Spell, p.X+p.Width/2, p.Y, p.SpellSpeed))
	p.Cooldown = p.MaxCooldown
	return true
}

// Update ticks the cooldown and moves spells, dropping those that left the top.
func (p *Player) Update() {
	if p.Cooldown > 0 {
		p.Cooldown--
	}

	valid := p.Spells[:0]
	for _, s := range p.Spells {
		s.Update()
		if !s.OffScreen() {
			valid = append(valid, s)
		}
	}
	p.Spells = valid
}

// CycleSpell selects the next spell. Fire moves to Ice and Ice to Wind
// only when unlocked by the high score; a locked step returns to Fire.
func (p *Player) CycleSpell(highScore int, unlocks config.UnlockConfig) {
	switch p.Spell {
	case SpellFire:
		if SpellIce.Unlocked(highScore, unlocks) {
			p.Spell = SpellIce
		}
	case SpellIce:
		if SpellWind.Unlocked(highScore, unlocks) {
			p.Spell = SpellWind
		} else {
			p.Spell = SpellFire
		}
	default:
		p.Spell = SpellFire
	}
}

// Alive reports whether the player has health left.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// dropConsumed removes spells that hit an enemy.
func (p *Player) dropConsumed() {
	valid := p.Spells[:0]
	for _, s := range p.Spells {
		if !s.consumed {
			valid = append(valid, s)
		}
	}
	p.Spells = valid
}
