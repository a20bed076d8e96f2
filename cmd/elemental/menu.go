package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/elemental-defense/internal/config"
	"github.com/vovakirdan/elemental-defense/internal/games/defense"
	"github.com/vovakirdan/elemental-defense/internal/platform/tui"
	"github.com/vovakirdan/elemental-defense/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start the game with the title menu.

Use arrow keys or j/k to navigate, Enter to select. Left/Right on the
Difficulty row changes the preset for the next run. After a run you return
to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Q            - Quit

Examples:
  elemental menu
  elemental menu --fps 30
  elemental menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	keeper, err := highScoreKeeper(store)
	if err != nil {
		return err
	}
	if keeper == nil {
		keeper = &registry.MemoryKeeper{}
	}

	cfg := terminalConfig()
	preset := config.ParsePreset(flagDifficulty)
	title := "Elemental Defense"

	// Menu loop
	for {
		result, err := tui.RunMenu(cfg, preset, keeper.LoadHighScore())
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = result.Config
		preset = result.Preset

		switch result.Choice {
		case tui.MenuChoicePlay:
			if err := playOnce(store, cfg, preset, logger); err != nil {
				return err
			}
		case tui.MenuChoiceScores:
			if err := tui.RunScoreboard(store, defense.GameID, title, cfg.ScreenW, cfg.ScreenH); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
