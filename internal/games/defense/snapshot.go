package defense

// Snapshot contains the observable game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       int
	State      string
	Score      int
	HighScore  int
	Health     int
	Kills      int
	PlayerX    float64
	Spell      int
	Cooldown   int
	SpellCount int

	// Each enemy is 5 values: X, Y, Health, FreezeTimer, BurnTimer
	EnemyCount int
	EnemyData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]float64, 0, len(g.enemies)*5)
	for _, e := range g.enemies {
		enemyData = append(enemyData,
			e.X,
			e.Y,
			float64(e.Health),
			float64(e.Status.FreezeTimer),
			float64(e.Status.BurnTimer),
		)
	}

	return Snapshot{
		Tick:       g.tickCount,
		State:      g.state.String(),
		Score:      g.player.Score,
		HighScore:  g.highScore,
		Health:     g.player.Health,
		Kills:      g.kills,
		PlayerX:    g.player.X,
		Spell:      int(g.player.Spell),
		Cooldown:   g.player.Cooldown,
		SpellCount: len(g.player.Spells),
		EnemyCount: len(g.enemies),
		EnemyData:  enemyData,
	}
}
