package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/elemental-defense/internal/config"
	"github.com/vovakirdan/elemental-defense/internal/core"
	"github.com/vovakirdan/elemental-defense/internal/registry"
	"github.com/vovakirdan/elemental-defense/internal/storage"
)

// holdTicks is how long a movement key counts as held after its last press.
// Terminals only report presses, repeated while the key is down.
const holdTicks = 8

// noticeTicks is how long a status notice replaces the help line.
const noticeTicks = 180

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// ConfigReloadMsg carries a game config reloaded after a file change.
type ConfigReloadMsg struct {
	Path   string
	Config config.DefenseConfig
	Err    error
}

// configurable is implemented by games that accept a config for the next run.
type configurable interface {
	ApplyConfig(cfg config.DefenseConfig)
}

// difficultyAware is implemented by games with per-instance difficulty presets.
type difficultyAware interface {
	UseDifficulty(preset config.DifficultyPreset)
}

// Options holds the optional collaborators of a Model.
type Options struct {
	Store   *storage.Store           // Scoreboard; nil disables score history
	Keeper  registry.HighScoreKeeper // High score persistence; nil keeps it in memory
	Logger  *log.Logger              // nil discards logs
	Watcher *config.Watcher          // nil disables config hot reload
	Preset  config.DifficultyPreset  // "" keeps the game's own preset
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	watcher    *config.Watcher
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	help       help.Model
	gameState  core.GameState
	heldAction core.Action // Movement latched by the last arrow press
	heldFor    int         // Ticks left on the latch
	notice     string
	noticeFor  int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if aware, ok := game.(registry.HighScoreAware); ok && opts.Keeper != nil {
		aware.UseHighScores(loggingKeeper{HighScoreKeeper: opts.Keeper, logger: logger})
	}

	if aware, ok := game.(difficultyAware); ok && opts.Preset != "" {
		aware.UseDifficulty(opts.Preset)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      opts.Store,
		logger:     logger,
		watcher:    opts.Watcher,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
}

// playfieldHeight leaves the last terminal row for the help line.
func playfieldHeight(termH int) int {
	return core.Max(termH-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, watchConfig(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigReloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionLeft || action == core.ActionRight:
		// The latest direction wins; repeats keep the latch alive
		m.heldAction = action
		m.heldFor = holdTicks

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The simulation runs in world units, so the run continues at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.heldFor > 0 {
		m.inputFrame.Set(m.heldAction)
		m.heldFor--
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Ended {
		m.recordRun(result.State)
		m.heldFor = 0
	}

	if m.noticeFor > 0 {
		m.noticeFor--
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordRun adds a finished run to the scoreboard.
func (m Model) recordRun(state core.GameState) {
	m.logger.Info("run finished", "game", m.game.ID(), "score", state.Score, "high_score", state.HighScore)

	if m.store == nil || state.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), state.Score); err != nil {
		m.logger.Error("could not save score", "score", state.Score, "error", err)
	}
}

// handleReload queues a reloaded config for the next run.
func (m Model) handleReload(msg ConfigReloadMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Err != nil:
		m.logger.Warn("config reload failed", "path", msg.Path, "error", msg.Err)
		m.setNotice("Config error, keeping current rules")
	default:
		if c, ok := m.game.(configurable); ok {
			c.ApplyConfig(msg.Config)
			m.logger.Info("config reloaded", "path", msg.Path)
			m.setNotice("Config reloaded, applies on restart")
		}
	}
	return m, watchConfig(m.watcher)
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeFor = noticeTicks
}

// watchConfig waits for the next config change and loads it.
func watchConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			cfg, err := config.LoadDefense(path)
			return ConfigReloadMsg{Path: path, Config: cfg, Err: err}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ConfigReloadMsg{Err: err}
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Create screenshots directory
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setNotice("Screenshot saved")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.helpLine()
}

// helpLine shows a pending notice or the key bindings for the current state.
func (m Model) helpLine() string {
	if m.noticeFor > 0 && m.notice != "" {
		return helpStyle.Render(m.notice)
	}
	keys := m.keyMapper.Keys()
	if m.gameState.GameOver {
		return helpStyle.Render(m.help.ShortHelpView([]key.Binding{keys.Restart, keys.Quit}))
	}
	return helpStyle.Render(m.help.View(keys))
}

// IsQuitting returns true if the player asked to leave the game.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
