package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/elemental-defense/internal/registry"
)

// loggingKeeper reports high score writes. The game never sees a failure
// as fatal, so the error is logged here before it is dropped.
type loggingKeeper struct {
	registry.HighScoreKeeper
	logger *log.Logger
}

// SaveHighScore writes through to the wrapped keeper and logs the outcome.
func (k loggingKeeper) SaveHighScore(score int) error {
	if err := k.HighScoreKeeper.SaveHighScore(score); err != nil {
		k.logger.Error("could not save high score", "score", score, "error", err)
		return err
	}
	k.logger.Info("new high score", "score", score)
	return nil
}
