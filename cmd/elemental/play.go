package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/elemental-defense/internal/config"
	"github.com/vovakirdan/elemental-defense/internal/core"
	"github.com/vovakirdan/elemental-defense/internal/games/defense"
	"github.com/vovakirdan/elemental-defense/internal/platform/tui"
	"github.com/vovakirdan/elemental-defense/internal/registry"
	"github.com/vovakirdan/elemental-defense/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run immediately",
	Long: `Start playing without the title menu.

Controls:
  Left/Right, A/D, H/L  - Move
  Space                 - Cast the selected spell
  Tab                   - Cycle spell (Fire, Ice, Wind)
  P/Esc                 - Pause
  R                     - Restart (after game over)
  Ctrl+S                - Save a screenshot
  Q/Ctrl+C              - Quit

Ice unlocks once your best score reaches the configured threshold, wind
after that.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  elemental play
  elemental play --difficulty hard
  elemental play --seed 42 --fps 30
  elemental play --config ./defense.yaml --watch --log-file ./defense.log
  elemental play --high-score-file ~/.elemental_highscore`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	if err := checkFlags(); err != nil {
		return err
	}
	configureGame()

	store := openStore(logger)
	if store != nil {
		//nolint:errcheck // Best-effort close
		defer store.Close()
	}

	return playOnce(store, terminalConfig(), "", logger)
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// checkFlags surfaces a bad --difficulty value or errors in an explicit
// --config file before the terminal is taken over. Without --config the
// loader falls back silently.
func checkFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig == "" {
		return nil
	}
	if _, err := config.LoadDefense(flagConfig); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}

// highScoreKeeper picks the keeper for the best score: the text file when
// --high-score-file is set, otherwise the database.
func highScoreKeeper(store *storage.Store) (registry.HighScoreKeeper, error) {
	if flagHighScoreFile != "" {
		keeper, err := storage.NewFileKeeper(flagHighScoreFile)
		if err != nil {
			return nil, err
		}
		return keeper, nil
	}
	if store != nil {
		return store.Keeper(defense.GameID), nil
	}
	return nil, nil
}

// configWatcher starts watching the active config file when --watch is set.
// It returns nil when there is nothing to watch.
func configWatcher(logger *log.Logger) *config.Watcher {
	if !flagWatch {
		return nil
	}
	path := config.ResolveDefensePath(flagConfig)
	if path == "" {
		logger.Warn("nothing to watch, using the built-in config")
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		logger.Warn("config watch disabled", "path", path, "error", err)
		return nil
	}
	logger.Info("watching config", "path", path)
	return w
}

// playOnce runs a single game session until the player quits.
func playOnce(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset, logger *log.Logger) error {
	gameCfg, err := config.LoadDefense(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	game := defense.NewWithConfig(gameCfg)

	keeper, err := highScoreKeeper(store)
	if err != nil {
		return err
	}

	watcher := configWatcher(logger)
	if watcher != nil {
		//nolint:errcheck // Best-effort close
		defer watcher.Close()
	}

	if err := tui.Run(game, cfg, tui.Options{
		Store:   store,
		Keeper:  keeper,
		Logger:  logger,
		Watcher: watcher,
		Preset:  preset,
	}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
