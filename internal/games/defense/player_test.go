package defense

import (
	"math"
	"testing"

	"github.com/vovakirdan/elemental-defense/internal/config"
)

func newTestPlayer() *Player {
	cfg := config.DefaultDefenseConfig()
	return NewPlayer(cfg, NewAssets(cfg).Hero)
}

func TestPlayerSpawn(t *testing.T) {
	p := newTestPlayer()

	if p.X != 385 || p.Y != 500 {
		t.Errorf("spawn = (%f, %f), expected (385, 500)", p.X, p.Y)
	}
	if p.Health != 100 {
		t.Errorf("Health = %d, expected 100", p.Health)
	}
	if p.Spell != SpellFire {
		t.Errorf("Spell = %s, expected Fire", p.Spell)
	}
	if p.Cooldown != 0 {
		t.Errorf("Cooldown = %d, expected 0", p.Cooldown)
	}
}

func TestPlayerShootCooldown(t *testing.T) {
	p := newTestPlayer()

	if !p.Shoot() {
		t.Fatal("first shot should succeed")
	}
	if p.Cooldown != 20 {
		t.Fatalf("Cooldown after shot = %d, expected 20", p.Cooldown)
	}

	// 19 further attempts within the cooldown produce nothing
	for tick := 1; tick < 20; tick++ {
		p.Update()
		if p.Shoot() {
			t.Fatalf("tick %d: shot fired during cooldown %d", tick, p.Cooldown)
		}
	}
	if len(p.Spells) != 1 {
		t.Fatalf("spells = %d, expected 1", len(p.Spells))
	}

	// Tick 20 clears the cooldown
	p.Update()
	if p.Cooldown != 0 {
		t.Fatalf("Cooldown on tick 20 = %d, expected 0", p.Cooldown)
	}
	if !p.Shoot() {
		t.Error("shot on tick 20 should succeed")
	}
	if len(p.Spells) != 2 {
		t.Errorf("spells = %d, expected 2", len(p.Spells))
	}
}

func TestPlayerSpellOrigin(t *testing.T) {
	p := newTestPlayer()
	p.Spell = SpellWind
	p.Shoot()

	s := p.Spells[0]
	if s.X != p.X+p.Width/2 || s.Y != p.Y {
		t.Errorf("spell at (%f, %f), expected (%f, %f)", s.X, s.Y, p.X+p.Width/2, p.Y)
	}
	if s.Type != SpellWind {
		t.Errorf("spell type = %s, expected Wind", s.Type)
	}
	if s.Speed != 7 {
		t.Errorf("spell speed = %f, expected 7", s.Speed)
	}
}

func TestPlayerMoveClamp(t *testing.T) {
	p := newTestPlayer()

	p.Move(1, 0)
	if p.X != 390 {
		t.Errorf("X after one step right = %f, expected 390", p.X)
	}

	for i := 0; i < 200; i++ {
		p.Move(-1, 0)
	}
	if p.X != 0 {
		t.Errorf("X = %f, expected clamp at 0", p.X)
	}

	for i := 0; i < 200; i++ {
		p.Move(1, 0)
	}
	if p.X != 760 {
		t.Errorf("X = %f, expected clamp at 760", p.X)
	}
}

func TestPlayerMoveDiagonalNormalized(t *testing.T) {
	p := newTestPlayer()
	start := p.X

	p.Move(1, 1)

	expected := start + 5/math.Sqrt2
	if math.Abs(p.X-expected) > 1e-9 {
		t.Errorf("X = %f, expected %f", p.X, expected)
	}
	if p.Y != 500 {
		t.Errorf("vertical input moved the player to Y=%f", p.Y)
	}
}

func TestPlayerMoveAxisNotNormalized(t *testing.T) {
	p := newTestPlayer()
	start := p.X

	p.Move(2, 0)

	if p.X != start+10 {
		t.Errorf("X = %f, expected %f", p.X, start+10)
	}
}

func TestPlayerSpellsLeaveTop(t *testing.T) {
	p := newTestPlayer()
	p.Shoot()

	// Spell starts at y=500 and moves 7 per tick
	for i := 0; i < 71; i++ {
		p.Update()
	}
	if len(p.Spells) != 1 {
		t.Fatalf("spell removed early at y=%f", 500-71*7.0)
	}

	p.Update()
	if len(p.Spells) != 0 {
		t.Errorf("spell above the top should be removed, got %d", len(p.Spells))
	}
}

func TestPlayerCycleSpell(t *testing.T) {
	unlocks := config.UnlockConfig{Ice: 100, Wind: 200}

	tests := []struct {
		name      string
		from      SpellType
		highScore int
		expected  SpellType
	}{
		{"fire locked", SpellFire, 99, SpellFire},
		{"fire to ice", SpellFire, 100, SpellIce},
		{"ice to fire when wind locked", SpellIce, 150, SpellFire},
		{"ice to wind", SpellIce, 200, SpellWind},
		{"wind to fire", SpellWind, 500, SpellFire},
		{"wind to fire always", SpellWind, 0, SpellFire},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer()
			p.Spell = tc.from
			p.CycleSpell(tc.highScore, unlocks)
			if p.Spell != tc.expected {
				t.Errorf("CycleSpell from %s with %d = %s, expected %s",
					tc.from, tc.highScore, p.Spell, tc.expected)
			}
		})
	}
}
