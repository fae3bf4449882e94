package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// Loop is the game as driven by the model.
type Loop interface {
	// Frame runs one loop iteration and returns the delay before the next one.
	Frame() time.Duration
	// Paused reports whether the game is waiting for input.
	Paused() bool
	// Over reports whether the game has ended.
	Over() bool
	// Quit ends the game; a no-op once it is over.
	Quit()
}

// Model is the Bubble Tea model running the game.
// Key messages are queued on the display; each tick runs one game frame and
// schedules the next tick after the delay the frame returned.
type Model struct {
	game    Loop
	display *Display
	status  *StatusLine
	keys    KeyMap
	help    help.Model
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Loop, display *Display, status *StatusLine) Model {
	return Model{
		game:    game,
		display: display,
		status:  status,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init starts the tick loop with an immediate first frame.
func (m Model) Init() tea.Cmd {
	return tickCmd(0)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev, ok := m.keys.MapKey(msg); ok {
			m.display.Push(ev)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	delay := m.game.Frame()
	if m.game.Over() {
		return m, tea.Quit
	}
	return m, tickCmd(delay)
}

// View renders the last presented frame and the status line.
func (m Model) View() string {
	if m.game.Over() {
		return ""
	}

	status := m.status.String()
	if m.game.Paused() {
		m.help.Width = m.status.Width() - runewidth.StringWidth(status) - 2
		if m.help.Width > 0 {
			status += "  " + m.help.View(m.keys)
		}
	}
	return m.display.View() + "\n" + status
}

// Run starts the Bubble Tea program and blocks until the game ends.
func Run(game Loop, display *Display, status *StatusLine) error {
	p := tea.NewProgram(
		NewModel(game, display, status),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return finish(game, err)
}

// finish ends a game the program left early, so the display is torn down
// whichever way the program stopped. An interrupt counts as a normal quit.
func finish(game Loop, err error) error {
	game.Quit()
	if errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}
