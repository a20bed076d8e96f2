package defense

import (
	"github.com/vovakirdan/elemental-defense/internal/config"
	"github.com/vovakirdan/elemental-defense/internal/core"
)

// SpellType identifies one of the three elements the player can cast.
type SpellType int

const (
	SpellFire SpellType = iota
	SpellIce
	SpellWind
	spellTypeCount // Sentinel for counting types
)

// Status effect rules, in ticks at 60 FPS.
const (
	BurnDuration   = 100 // Ticks a Fire hit keeps an enemy burning
	BurnInterval   = 20  // Burn damage lands when the timer is a multiple of this
	BurnDamage     = 5   // Damage per burn interval
	FreezeDuration = 60  // Ticks an Ice hit holds an enemy in place
	WindPush       = 4.0 // Upward push velocity set by a Wind hit
	WindDecay      = 0.2 // Push lost per tick
)

// SpellStats is the fixed table entry for a spell type.
type SpellStats struct {
	Name   string
	Damage int
	Radius float64 // Collision size in world units, treated as a diameter
	Glyph  rune
	Color  core.Color
}

var spellTable = [spellTypeCount]SpellStats{
	SpellFire: {Name: "Fire", Damage: 30, Radius: 30, Glyph: '◉', Color: core.ColorOrange},
	SpellIce:  {Name: "Ice", Damage: 20, Radius: 30, Glyph: '◇', Color: core.ColorIceBlue},
	SpellWind: {Name: "Wind", Damage: 15, Radius: 30, Glyph: '≈', Color: core.ColorGreen},
}

// Stats returns the constant table entry for the spell type.
func (t SpellType) Stats() SpellStats {
	if t < 0 || t >= spellTypeCount {
		return spellTable[SpellFire]
	}
	return spellTable[t]
}

// String returns the name of the spell type.
func (t SpellType) String() string {
	return t.Stats().Name
}

// Unlocked reports whether the spell can be selected with the given high score.
func (t SpellType) Unlocked(highScore int, unlocks config.UnlockConfig) bool {
	switch t {
	case SpellIce:
		return highScore >= unlocks.Ice
	case SpellWind:
		return highScore >= unlocks.Wind
	default:
		return true
	}
}

// Spell is a projectile travelling up the playfield.
type Spell struct {
	X, Y  float64 // Center position in world units
	Speed float64 // Upward speed per tick
	Type  SpellType

	consumed bool // Hit an enemy this tick; removed after combat
}

// NewSpell creates a spell of the given type centered at (x, y).
func NewSpell(t SpellType, x, y, speed float64) Spell {
	return Spell{X: x, Y: y, Speed: speed, Type: t}
}

// Update moves the spell up by its speed.
func (s *Spell) Update() {
	s.Y -= s.Speed
}

// OffScreen reports whether the spell left the top of the playfield.
func (s Spell) OffScreen() bool {
	return s.Y < 0
}

// Damage returns the direct hit damage.
func (s Spell) Damage() int {
	return s.Type.Stats().Damage
}

// Radius returns the collision size.
func (s Spell) Radius() float64 {
	return s.Type.Stats().Radius
}

// ApplyEffect sets the status effect of the spell on the enemy.
// A new hit overwrites the previous timer of the same kind.
func (s Spell) ApplyEffect(e *Enemy) {
	switch s.Type {
	case SpellFire:
		e.Status.Ignite()
	case SpellIce:
		e.Status.Freeze()
	case SpellWind:
		e.Status.Blow()
	}
}
