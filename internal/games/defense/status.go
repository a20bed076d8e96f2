package defense

import "math"

// StatusEffects holds the timed modifiers on an enemy.
// Each kind has a single timer; re-application resets it.
type StatusEffects struct {
	FreezeTimer int     // Ticks left frozen
	Burning     bool    // Whether burn damage is active
	BurnTimer   int     // Ticks left burning
	Push        float64 // Upward wind velocity, never negative
}

// Ignite starts or restarts burning.
func (s *StatusEffects) Ignite() {
	s.Burning = true
	s.BurnTimer = BurnDuration
}

// Freeze starts or restarts the freeze timer.
func (s *StatusEffects) Freeze() {
	s.FreezeTimer = FreezeDuration
}

// Blow sets the wind push velocity.
func (s *StatusEffects) Blow() {
	s.Push = WindPush
}

// Frozen reports whether the freeze timer is running.
func (s StatusEffects) Frozen() bool {
	return s.FreezeTimer > 0
}

// Pushed reports whether wind is still moving the enemy.
func (s StatusEffects) Pushed() bool {
	return s.Push > 0
}

// tickFreeze advances the freeze timer.
// Returns true if the enemy is held in place this tick.
func (s *StatusEffects) tickFreeze() bool {
	if s.FreezeTimer > 0 {
		s.FreezeTimer--
		return true
	}
	return false
}

// tickPush returns the upward displacement for this tick and decays the push.
func (s *StatusEffects) tickPush() float64 {
	if s.Push <= 0 {
		s.Push = 0
		return 0
	}
	p := s.Push
	s.Push = math.Max(0, s.Push-WindDecay)
	return p
}

// tickBurn advances the burn timer and returns the damage dealt this tick.
// Damage lands whenever the timer is a multiple of BurnInterval.
func (s *StatusEffects) tickBurn() int {
	if !s.Burning {
		return 0
	}

	damage := 0
	if s.BurnTimer%BurnInterval == 0 {
		damage = BurnDamage
	}
	if s.BurnTimer > 0 {
		s.BurnTimer--
	}
	if s.BurnTimer <= 0 {
		s.Burning = false
	}
	return damage
}
