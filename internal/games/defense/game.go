// Package defense implements Elemental Defense, a single-screen shooter.
// The player moves along the bottom of the playfield and casts Fire, Ice
// and Wind spells at enemies descending from the top. Spell hits leave
// status effects (burning, freezing, wind push) that change how enemies move.
package defense

import (
	"github.com/vovakirdan/elemental-defense/internal/config"
	"github.com/vovakirdan/elemental-defense/internal/core"
	"github.com/vovakirdan/elemental-defense/internal/registry"
)

// GameID is the registry and storage identifier of the game.
const GameID = "defense"

// State is the lifecycle state of a run.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game implements the Elemental Defense simulation.
// All entity state is owned here and mutated only by Step.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.DefenseConfig
	pending    *config.DefenseConfig // Applied on the next Reset or restart
	assets     *Assets
	difficulty *config.DifficultyManager
	player     *Player
	enemies    []Enemy
	spawner    *Spawner
	background Background
	keeper     registry.HighScoreKeeper
	preset     config.DifficultyPreset // Overrides the CLI preset when set
	highScore  int
	newRecord  bool
	state      State
	tickCount  int
	kills      int // Enemies destroyed this run
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Elemental Defense game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading from disk.
func NewWithConfig(cfg config.DefenseConfig) *Game {
	g := New()
	g.ApplyConfig(cfg)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Elemental Defense"
}

// UseHighScores attaches the high score store. Takes effect on Reset.
func (g *Game) UseHighScores(k registry.HighScoreKeeper) {
	g.keeper = k
}

// UseDifficulty sets a difficulty preset for this instance only.
// Takes effect on the next Reset or restart.
func (g *Game) UseDifficulty(preset config.DifficultyPreset) {
	g.preset = preset
	if g.pending == nil && g.player != nil {
		cfg := g.cfg
		g.pending = &cfg
	}
}

// ApplyConfig queues a configuration for the next run.
// The current run keeps its rules until restart.
func (g *Game) ApplyConfig(cfg config.DefenseConfig) {
	g.pending = &cfg
}

// Reset initializes the game from scratch: config, assets, high score and RNG.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.pending == nil {
		cfg, err := config.LoadDefense(configPath)
		if err != nil {
			cfg = config.DefaultDefenseConfig()
		}
		g.pending = &cfg
	}
	g.loadPending()

	if g.keeper == nil {
		g.keeper = &registry.MemoryKeeper{}
	}
	g.highScore = g.keeper.LoadHighScore()

	if g.spawner == nil {
		g.spawner = NewSpawner(runtime.Seed, &g.cfg, g.assets, g.difficulty)
	} else {
		g.spawner.Reset(runtime.Seed)
	}

	g.startRun()
}

// loadPending installs the queued config, applying the CLI preset.
func (g *Game) loadPending() {
	if g.pending == nil {
		return
	}
	cfg := *g.pending
	g.pending = nil

	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplyDefensePreset(&cfg, preset)

	g.cfg = cfg
	g.assets = NewAssets(cfg)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.background.ScrollSpeed = cfg.Background.ScrollSpeed
	g.background.StripHeight = cfg.Background.StripHeight
	if g.spawner != nil {
		g.spawner.UpdateConfig(&g.cfg, g.assets, g.difficulty)
	}
}

// startRun resets per-run state. The high score and RNG stream are kept.
func (g *Game) startRun() {
	g.player = NewPlayer(g.cfg, g.assets.Hero)
	g.enemies = g.enemies[:0]
	g.background.Reset()
	g.state = StatePlaying
	g.newRecord = false
	g.tickCount = 0
	g.kills = 0
}

// restart begins a new run after game over.
func (g *Game) restart() {
	g.loadPending()
	g.spawner.Restart()
	g.startRun()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.state {
	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}

	case StatePaused:
		if in.Has(core.ActionPause) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.state = StatePaused
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Input
	if in.Has(core.ActionFire) {
		g.player.Shoot()
	}
	if in.Has(core.ActionCycleSpell) {
		g.player.CycleSpell(g.highScore, g.cfg.Unlocks)
	}
	if dx := in.Horizontal(); dx != 0 {
		g.player.Move(float64(dx), 0)
	}

	// World
	if e, ok := g.spawner.Update(g.player.Score, g.tickCount); ok {
		g.enemies = append(g.enemies, e)
	}
	g.background.Update()
	g.player.Update()

	res := g.resolveCombat()
	g.kills += res.kills

	result := core.StepResult{
		Kills:   res.kills,
		Escapes: res.escapes,
	}

	if !g.player.Alive() {
		g.endRun()
		result.Ended = true
	}

	result.State = g.State()
	return result
}

// endRun moves to game over and persists a beaten high score once.
func (g *Game) endRun() {
	g.state = StateGameOver

	score := g.player.Score
	if score > g.highScore {
		g.highScore = score
		//nolint:errcheck // Best-effort save; the keeper reports its own failures
		g.keeper.SaveHighScore(score)
	}
	g.newRecord = score >= g.highScore
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.player == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.player.Score,
		HighScore: g.highScore,
		GameOver:  g.state == StateGameOver,
		Paused:    g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
