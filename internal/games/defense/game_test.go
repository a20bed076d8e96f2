package defense

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/elemental-defense/internal/config"
	"github.com/vovakirdan/elemental-defense/internal/core"
	"github.com/vovakirdan/elemental-defense/internal/registry"
)

// countingKeeper records how often the high score was written.
type countingKeeper struct {
	registry.MemoryKeeper
	saves int
}

func (k *countingKeeper) SaveHighScore(score int) error {
	k.saves++
	return k.MemoryKeeper.SaveHighScore(score)
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, keeper registry.HighScoreKeeper) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultDefenseConfig())
	if keeper != nil {
		g.UseHighScores(keeper)
	}
	g.Reset(testRuntime(42))
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical states
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%3 == 0 {
			inputs[i].Set(core.ActionFire)
		}
		switch {
		case i%400 < 150:
			inputs[i].Set(core.ActionLeft)
		case i%400 < 300:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := NewWithConfig(config.DefaultDefenseConfig())
		g.UseHighScores(&registry.MemoryKeeper{})
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()

	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Determinism failed:\n  run1=%+v\n  run2=%+v", s1, s2)
	}
	if s1.Tick == 0 {
		t.Error("simulation did not advance")
	}
}

func TestGameInitialState(t *testing.T) {
	g := newTestGame(t, nil)

	if g.state != StatePlaying {
		t.Errorf("initial state = %s, expected Playing", g.state)
	}
	if len(g.enemies) != 0 {
		t.Errorf("initial enemies = %d, expected 0", len(g.enemies))
	}
	if g.player.Health != 100 || g.player.Score != 0 {
		t.Errorf("initial player health %d score %d", g.player.Health, g.player.Score)
	}
}

func TestGameSpawnsEnemies(t *testing.T) {
	g := newTestGame(t, nil)

	for i := 0; i < 59; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.enemies) != 0 {
		t.Fatalf("enemy spawned before tick 60")
	}

	g.Step(core.NewInputFrame())
	if len(g.enemies) != 1 {
		t.Fatalf("enemies after tick 60 = %d, expected 1", len(g.enemies))
	}
}

func TestGameFireHitAppliesBurn(t *testing.T) {
	g := newTestGame(t, nil)

	g.enemies = append(g.enemies, NewEnemy(100, 30, 1, 100, 0))
	g.enemies[0].Y = 100
	// After this tick the enemy center is (115, 116) and the spell is at (115, 123)
	g.player.Spells = append(g.player.Spells, NewSpell(SpellFire, 115, 130, 7))

	g.Step(core.NewInputFrame())

	if len(g.enemies) != 1 {
		t.Fatalf("enemies = %d, expected 1", len(g.enemies))
	}
	e := g.enemies[0]
	if e.Health != 70 {
		t.Errorf("Health = %d, expected 70", e.Health)
	}
	if !e.Status.Burning || e.Status.BurnTimer != 100 {
		t.Errorf("status = %+v, expected burning with timer 100", e.Status)
	}
	if len(g.player.Spells) != 0 {
		t.Errorf("spell should be consumed, %d left", len(g.player.Spells))
	}
}

func TestGameKillScores(t *testing.T) {
	g := newTestGame(t, nil)

	e := NewEnemy(100, 30, 1, 100, 0)
	e.Y = 100
	e.Health = 10
	g.enemies = append(g.enemies, e)
	g.player.Spells = append(g.player.Spells, NewSpell(SpellWind, 115, 130, 7))

	result := g.Step(core.NewInputFrame())

	if len(g.enemies) != 0 {
		t.Errorf("killed enemy should be removed, %d left", len(g.enemies))
	}
	if g.player.Score != 10 {
		t.Errorf("Score = %d, expected 10", g.player.Score)
	}
	if result.Kills != 1 {
		t.Errorf("Kills = %d, expected 1", result.Kills)
	}

	// Score is awarded exactly once
	g.Step(core.NewInputFrame())
	if g.player.Score != 10 {
		t.Errorf("Score changed to %d after the kill", g.player.Score)
	}
}

func TestGameKillStopsSpellTests(t *testing.T) {
	g := newTestGame(t, nil)

	e := NewEnemy(100, 30, 1, 100, 0)
	e.Y = 100
	e.Health = 10
	g.enemies = append(g.enemies, e)
	g.player.Spells = append(g.player.Spells,
		NewSpell(SpellWind, 115, 130, 7),
		NewSpell(SpellWind, 115, 132, 7),
	)

	result := g.Step(core.NewInputFrame())

	if result.Kills != 1 || len(g.enemies) != 0 {
		t.Fatalf("kills %d, enemies %d, expected one kill", result.Kills, len(g.enemies))
	}
	if g.player.Score != 10 {
		t.Errorf("Score = %d, expected 10", g.player.Score)
	}
	if len(g.player.Spells) != 1 {
		t.Fatalf("%d spells left, expected the second spell to survive", len(g.player.Spells))
	}
	if g.player.Spells[0].Y != 125 {
		t.Errorf("surviving spell Y = %f, expected 125", g.player.Spells[0].Y)
	}
}

func TestGameBurnKill(t *testing.T) {
	g := newTestGame(t, nil)

	e := NewEnemy(100, 30, 1, 100, 0)
	e.Y = 100
	e.Health = 5
	e.Status.Burning = true
	e.Status.BurnTimer = BurnInterval
	g.enemies = append(g.enemies, e)

	result := g.Step(core.NewInputFrame())

	if result.Kills != 1 || len(g.enemies) != 0 {
		t.Errorf("burn should finish the enemy: kills %d, enemies %d", result.Kills, len(g.enemies))
	}
	if g.player.Score != 10 {
		t.Errorf("Score = %d, expected 10", g.player.Score)
	}
}

func TestGameSpellHitsOneEnemy(t *testing.T) {
	g := newTestGame(t, nil)

	for i := 0; i < 2; i++ {
		e := NewEnemy(100, 30, 1, 100, i)
		e.Y = 100
		g.enemies = append(g.enemies, e)
	}
	g.player.Spells = append(g.player.Spells, NewSpell(SpellIce, 115, 130, 7))

	g.Step(core.NewInputFrame())

	if g.enemies[0].Health != 80 {
		t.Errorf("first enemy Health = %d, expected 80", g.enemies[0].Health)
	}
	if g.enemies[1].Health != 100 {
		t.Errorf("second enemy Health = %d, expected 100 (spell already consumed)", g.enemies[1].Health)
	}
}

func TestGameEscapeDamagesPlayer(t *testing.T) {
	g := newTestGame(t, nil)

	e := NewEnemy(100, 30, 1, 100, 0)
	e.Y = 600
	g.enemies = append(g.enemies, e)

	result := g.Step(core.NewInputFrame())

	if result.Escapes != 1 || len(g.enemies) != 0 {
		t.Errorf("escapes %d, enemies %d; expected 1, 0", result.Escapes, len(g.enemies))
	}
	if g.player.Health != 80 {
		t.Errorf("Health = %d, expected 80", g.player.Health)
	}
	if g.state != StatePlaying {
		t.Errorf("state = %s, expected Playing", g.state)
	}
}

func TestGameOverPersistsHighScore(t *testing.T) {
	keeper := &countingKeeper{}
	keeper.MemoryKeeper.SaveHighScore(30)
	g := newTestGame(t, keeper)

	if g.highScore != 30 {
		t.Fatalf("high score loaded = %d, expected 30", g.highScore)
	}

	g.player.Health = 20
	g.player.Score = 50
	e := NewEnemy(100, 30, 1, 100, 0)
	e.Y = 600
	g.enemies = append(g.enemies, e)

	result := g.Step(core.NewInputFrame())

	if !result.Ended || !result.State.GameOver {
		t.Fatalf("run should end: %+v", result)
	}
	if g.state != StateGameOver {
		t.Errorf("state = %s, expected GameOver", g.state)
	}
	if keeper.LoadHighScore() != 50 {
		t.Errorf("persisted high score = %d, expected 50", keeper.LoadHighScore())
	}
	if !g.newRecord {
		t.Error("expected new record")
	}

	// Further ticks in game over do not write again
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if keeper.saves != 1 {
		t.Errorf("high score saved %d times, expected 1", keeper.saves)
	}
}

func TestGameOverKeepsBetterHighScore(t *testing.T) {
	keeper := &countingKeeper{}
	keeper.MemoryKeeper.SaveHighScore(500)
	g := newTestGame(t, keeper)

	g.player.Health = 20
	g.player.Score = 50
	e := NewEnemy(100, 30, 1, 100, 0)
	e.Y = 600
	g.enemies = append(g.enemies, e)

	g.Step(core.NewInputFrame())

	if keeper.saves != 0 {
		t.Errorf("lower score should not be saved, saves=%d", keeper.saves)
	}
	if keeper.LoadHighScore() != 500 {
		t.Errorf("high score = %d, expected 500", keeper.LoadHighScore())
	}
	if g.newRecord {
		t.Error("50 is not a record against 500")
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, nil)

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	for i := 0; i < 100; i++ {
		g.Step(input(core.ActionFire, core.ActionRight))
	}
	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("simulation advanced while paused:\n  before=%+v\n  after=%+v", before, after)
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameRestart(t *testing.T) {
	keeper := &registry.MemoryKeeper{}
	g := newTestGame(t, keeper)

	for i := 0; i < 200; i++ {
		g.Step(input(core.ActionFire, core.ActionLeft))
	}
	g.enemies = g.enemies[:0]
	g.player.Spells = g.player.Spells[:0]
	g.player.Health = 0
	g.player.Score = 120
	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	// Restart is the only input accepted in game over
	g.Step(input(core.ActionFire))
	if !g.State().GameOver {
		t.Fatal("fire should not leave game over")
	}

	g.Step(input(core.ActionRestart))

	if g.state != StatePlaying {
		t.Errorf("state = %s, expected Playing", g.state)
	}
	if len(g.enemies) != 0 || len(g.player.Spells) != 0 {
		t.Errorf("restart left %d enemies and %d spells", len(g.enemies), len(g.player.Spells))
	}
	if g.player.Score != 0 || g.player.Health != 100 {
		t.Errorf("restart player score %d health %d", g.player.Score, g.player.Health)
	}
	if g.player.X != 385 {
		t.Errorf("restart player X = %f, expected 385", g.player.X)
	}
	if g.highScore != 120 {
		t.Errorf("high score after restart = %d, expected 120", g.highScore)
	}
	if g.background.Offset != 0 {
		t.Errorf("background offset = %f, expected 0", g.background.Offset)
	}
}

func TestGameUnlockUsesHighScore(t *testing.T) {
	keeper := &registry.MemoryKeeper{}
	keeper.SaveHighScore(150)
	g := newTestGame(t, keeper)

	g.Step(input(core.ActionCycleSpell))
	if g.player.Spell != SpellIce {
		t.Fatalf("Spell = %s, expected Ice with high score 150", g.player.Spell)
	}
	g.Step(input(core.ActionCycleSpell))
	if g.player.Spell != SpellFire {
		t.Errorf("Spell = %s, expected Fire while Wind is locked", g.player.Spell)
	}

	// Current run score does not unlock spells
	fresh := newTestGame(t, &registry.MemoryKeeper{})
	fresh.player.Score = 1000
	fresh.Step(input(core.ActionCycleSpell))
	if fresh.player.Spell != SpellFire {
		t.Errorf("Spell = %s, expected Fire with high score 0", fresh.player.Spell)
	}
}

func TestGameOpposingInputCancels(t *testing.T) {
	g := newTestGame(t, nil)
	start := g.player.X

	g.Step(input(core.ActionLeft, core.ActionRight))

	if g.player.X != start {
		t.Errorf("X = %f, expected %f", g.player.X, start)
	}
}

func TestGameBackgroundScroll(t *testing.T) {
	g := newTestGame(t, nil)

	for i := 0; i < 300; i++ {
		g.Step(core.NewInputFrame())
	}

	// 300 ticks * 2 units = 600, one full strip
	if g.background.Offset != 0 {
		t.Errorf("Offset = %f, expected wrap to 0", g.background.Offset)
	}
	g.Step(core.NewInputFrame())
	if g.background.Offset != 2 {
		t.Errorf("Offset = %f, expected 2", g.background.Offset)
	}
}

func TestGameApplyConfigOnRestart(t *testing.T) {
	g := newTestGame(t, nil)

	cfg := config.DefaultDefenseConfig()
	cfg.Spawner.Interval = 10
	g.ApplyConfig(cfg)

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.enemies) != 0 {
		t.Fatal("new config applied before restart")
	}

	g.player.Health = 0
	g.Step(core.NewInputFrame())
	g.Step(input(core.ActionRestart))

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.enemies) != 1 {
		t.Errorf("enemies = %d, expected 1 with interval 10", len(g.enemies))
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(80, 24)

	for i := 0; i < 70; i++ {
		g.Step(input(core.ActionFire))
	}
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "High: 0", "[Fire]", "HP ", "100/100", "unlocks Ice"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	g.enemies = g.enemies[:0]
	g.player.Score = 40
	g.player.Health = 0
	g.Step(core.NewInputFrame())
	g.Render(screen)
	out = screen.String()

	for _, want := range []string{"GAME OVER", "Score: 40", "High Score: 40", "NEW RECORD!", "Press R to restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over render missing %q:\n%s", want, out)
		}
	}
}

func TestGameRenderSmallScreen(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < 120; i++ {
		g.Step(input(core.ActionFire))
	}

	// Tiny screens must not panic
	for _, size := range [][2]int{{1, 1}, {10, 3}, {0, 0}} {
		g.Render(core.NewScreen(size[0], size[1]))
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("defense should be registered")
	}
	game, err := registry.Create(GameID)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := game.(registry.HighScoreAware); !ok {
		t.Error("defense should accept a high score keeper")
	}
}
