// Package report prints score lines through charmbracelet/log.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Reporter writes one log line per score event.
type Reporter struct {
	logger *log.Logger
}

// New creates a reporter writing to w.
func New(w io.Writer) *Reporter {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "snake",
		ReportTimestamp: false,
	})
	return &Reporter{logger: logger}
}

// Score logs the score after the snake grows.
func (r *Reporter) Score(score int) {
	r.logger.Info(fmt.Sprintf("Score: %03d", score))
}

// Final logs the game-over summary.
func (r *Reporter) Final(snap snake.Snapshot) {
	r.logger.Info("Game Over", "score", snap.Score, "length", snap.Length, "lives", snap.Lives)
}
