package defense

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/elemental-defense/internal/config"
)

// Spawner creates enemies on a fixed tick interval.
type Spawner struct {
	timer      int
	rng        *rand.Rand
	cfg        *config.DefenseConfig
	assets     *Assets
	difficulty *config.DifficultyManager
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg *config.DefenseConfig, assets *Assets, diff *config.DifficultyManager) *Spawner {
	s := &Spawner{
		cfg:        cfg,
		assets:     assets,
		difficulty: diff,
	}
	s.Reset(seed)
	return s
}

// UpdateConfig swaps the configuration used for new enemies.
func (s *Spawner) UpdateConfig(cfg *config.DefenseConfig, assets *Assets, diff *config.DifficultyManager) {
	s.cfg = cfg
	s.assets = assets
	s.difficulty = diff
}

// Reset clears the timer and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.timer = 0
	s.rng = rand.New(rand.NewSource(seed))
}

// Restart clears the timer but keeps the RNG stream, so a new run differs.
func (s *Spawner) Restart() {
	s.timer = 0
}

// SpeedRange returns the base speed bounds for the current score.
// The upper bound never collapses below the lower one: it is at least
// min_speed + min_speed_spread and then scaled by difficulty.
func (s *Spawner) SpeedRange(score, ticks int) SpeedRange {
	e := s.cfg.Enemies
	lo := e.MinSpeed
	hi := math.Max(lo+e.MinSpeedSpread, float64(score)/e.SpeedScoreDivisor)
	hi *= s.difficulty.SpeedFactor(score, ticks)
	return SpeedRange{Lo: lo, Hi: hi}
}

// Interval returns the current ticks between spawns.
func (s *Spawner) Interval(score, ticks int) int {
	return s.difficulty.SpawnInterval(s.cfg.Spawner.Interval, s.cfg.Spawner.MinInterval, score, ticks)
}

// Update advances the timer and returns a new enemy when it fires.
func (s *Spawner) Update(score, ticks int) (Enemy, bool) {
	s.timer++
	if s.timer < s.Interval(score, ticks) {
		return Enemy{}, false
	}
	s.timer = 0
	return SpawnEnemy(s.rng, s.assets, *s.cfg, s.SpeedRange(score, ticks)), true
}
