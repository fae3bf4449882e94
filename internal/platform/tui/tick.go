// Package tui provides the Bubble Tea integration for the game.
// It implements the display backend, maps keys to actions and drives the
// game loop from tick messages.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game loop iteration.
type TickMsg time.Time

// tickCmd returns a command that sends a tick after the given delay.
// A non-positive delay ticks immediately.
func tickCmd(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg {
			return TickMsg(time.Now())
		}
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
