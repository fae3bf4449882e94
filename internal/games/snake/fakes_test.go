package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

type drawCall struct {
	x, y, w, h int
	c          core.Color
}

// fakeDisplay records draw calls and serves queued events.
type fakeDisplay struct {
	events    []core.Event
	draws     []drawCall
	presents  int
	teardowns int
}

func (d *fakeDisplay) DrawRect(x, y, w, h int, c core.Color) {
	d.draws = append(d.draws, drawCall{x, y, w, h, c})
}

func (d *fakeDisplay) Present() {
	d.presents++
}

func (d *fakeDisplay) PollEvents() []core.Event {
	evs := d.events
	d.events = nil
	return evs
}

func (d *fakeDisplay) Teardown() {
	d.teardowns++
}

func (d *fakeDisplay) push(actions ...core.Action) {
	for _, a := range actions {
		d.events = append(d.events, core.KeyEvent(a))
	}
}

type fakeReporter struct {
	scores []int
}

func (r *fakeReporter) Score(score int) {
	r.scores = append(r.scores, score)
}

// newTestGame builds a game on the default board with food parked in the
// top-left corner, away from the starting head.
func newTestGame(t *testing.T, opts Options) (*Game, *fakeDisplay, *fakeReporter) {
	t.Helper()
	d := &fakeDisplay{}
	r := &fakeReporter{}
	g, err := New(config.DefaultSnakeConfig(), d, r, opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	g.food = Position{X: 0, Y: 0}
	return g, d, r
}

// running puts the game past the first-step latch.
func running(g *Game) {
	g.firstStep = false
	g.state = StateRunning
}

func testBoard() Board {
	return Board{Width: 640, Height: 480, Tile: 16}
}
