// elemental is a terminal arcade shooter: hold off falling enemies with
// fire, ice and wind spells.
//
// Usage:
//
//	elemental                  - Start the title menu
//	elemental play             - Play immediately
//	elemental scores           - Show the scoreboard
//	elemental serve            - Start SSH server for remote play
//	elemental list             - List registered games
//
// Global flags:
//
//	--fps <rate>               - Set tick rate (default: 60)
//	--seed <value>             - Set RNG seed for reproducible gameplay
//	--db <path>                - Set database path (default: ~/.arcade/scores.db)
//	--config <path>            - Custom game config YAML
//	--difficulty <preset>      - easy, normal, hard, fixed
//	--high-score-file <path>   - Keep the best score in a plain text file
//	--watch                    - Reload the config file when it changes
//	--log-file <path>          - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/elemental-defense/internal/games/defense"
	"github.com/vovakirdan/elemental-defense/internal/storage"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagConfig        string
	flagDifficulty    string
	flagHighScoreFile string
	flagWatch         bool
	flagLogFile       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "elemental",
	Short: "Elemental Defense - a spell-slinging arcade shooter for the terminal",
	Long: `Elemental Defense puts you at the bottom of the field while enemies
fall from the top. Cast fire, ice and wind spells to stop them before they
get through. Wind and ice unlock as your best score grows.

Available commands:
  play     - Start a run directly
  menu     - Title menu (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  list     - Show registered games

Examples:
  elemental
  elemental play --difficulty hard
  elemental play --config ./defense.yaml --watch
  elemental serve --ssh :2222
  elemental scores`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagHighScoreFile, "high-score-file", "", "Keep the best score in this text file instead of the database")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the game config when the file changes")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded by default)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger returns the logger for terminal sessions. The terminal belongs
// to the game, so logs go to --log-file or nowhere. The returned func closes
// the log file.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "elemental",
	})
	closeFn := func() {
		//nolint:errcheck // Best-effort close
		f.Close()
	}
	return logger, closeFn, nil
}

// configureGame passes the config flags to the game package before any
// instance is created.
func configureGame() {
	defense.SetConfigPath(flagConfig)
	defense.SetDifficultyPreset(flagDifficulty)
}

// openStore opens the scores database. A failure is logged and the game
// runs without score history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
