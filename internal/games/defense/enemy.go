package defense

import (
	"math/rand"

	"github.com/vovakirdan/elemental-defense/internal/config"
	"github.com/vovakirdan/elemental-defense/internal/core"
)

// Enemy is a descending target.
type Enemy struct {
	X, Y      float64 // Top-left position in world units
	Size      float64 // Collision box side, also used as diameter
	Variant   int     // Index into the enemy sprite palette
	BaseSpeed float64 // Speed drawn at spawn
	Speed     float64 // Effective speed this tick
	Health    int
	MaxHealth int
	Status    StatusEffects
}

// SpeedRange bounds the base speed of spawned enemies.
type SpeedRange struct {
	Lo, Hi float64
}

// NewEnemy creates an enemy just above the playfield at column x.
func NewEnemy(x, size, baseSpeed float64, health, variant int) Enemy {
	return Enemy{
		X:         x,
		Y:         -size,
		Size:      size,
		Variant:   variant,
		BaseSpeed: baseSpeed,
		Speed:     baseSpeed,
		Health:    health,
		MaxHealth: health,
	}
}

// SpawnEnemy draws a variant, a column and a base speed from rng.
// Columns are whole world units in [0, width - size - margin].
func SpawnEnemy(rng *rand.Rand, assets *Assets, cfg config.DefenseConfig, speed SpeedRange) Enemy {
	variant := rng.Intn(assets.EnemyVariants())

	maxX := int(cfg.World.Width - cfg.Enemies.Size - cfg.Enemies.SpawnMarginRight)
	x := 0
	if maxX > 0 {
		x = rng.Intn(maxX + 1)
	}

	base := speed.Lo
	if speed.Hi > speed.Lo {
		base += rng.Float64() * (speed.Hi - speed.Lo)
	}

	return NewEnemy(float64(x), cfg.Enemies.Size, base, cfg.Enemies.Health, variant)
}

// Move advances the enemy one tick: freeze, wind push, descent, then burn.
func (e *Enemy) Move() {
	if e.Status.tickFreeze() {
		e.Speed = 0
	} else {
		e.Speed = e.BaseSpeed
	}

	e.Y -= e.Status.tickPush()
	e.Y += e.Speed
	e.Health -= e.Status.tickBurn()
}

// Center returns the center of the enemy box.
func (e Enemy) Center() (float64, float64) {
	return e.X + e.Size/2, e.Y + e.Size/2
}

// IsHit reports whether the spell overlaps the enemy.
// Both sizes are treated as diameters.
func (e Enemy) IsHit(s Spell) bool {
	cx, cy := e.Center()
	body := core.Circle{X: cx, Y: cy, R: e.Size / 2}
	return body.Overlaps(core.Circle{X: s.X, Y: s.Y, R: s.Radius() / 2})
}

// OffScreen reports whether the enemy passed the bottom of a playfield of height h.
func (e Enemy) OffScreen(h float64) bool {
	return e.Y > h
}

// Dead reports whether the enemy has no health left.
func (e Enemy) Dead() bool {
	return e.Health <= 0
}
