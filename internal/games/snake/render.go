package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme holds the colors and border size a frame is drawn with.
type Theme struct {
	Background   core.Color
	Playfield    core.Color
	Head         core.Color
	Food         core.Color
	Border       core.Color
	BorderWeight int

	BodyGreen int // green channel of the first body segment before fading
	FadeStep  int // green removed per segment
	FadeFloor int // green never drops below this
}

func newTheme(cfg config.SnakeConfig) (Theme, error) {
	colors, err := cfg.Theme.Colors()
	if err != nil {
		return Theme{}, err
	}
	return Theme{
		Background:   colors.BG,
		Playfield:    colors.MainBG,
		Head:         colors.SnakeTip,
		Food:         colors.Food,
		Border:       colors.Border,
		BorderWeight: cfg.Board.BorderWeight,
		BodyGreen:    cfg.Theme.BodyGreen,
		FadeStep:     cfg.Theme.BodyFadeStep,
		FadeFloor:    cfg.Theme.BodyFadeFloor,
	}, nil
}

// BodyColor returns the color of body segment i (i >= 1). Segments darken
// with distance from the head down to FadeFloor.
func (t Theme) BodyColor(i int) core.Color {
	g := core.Clamp(t.BodyGreen-t.FadeStep*i, t.FadeFloor, 255)
	return core.RGB(0, uint8(g), 0)
}

// Render draws the current state and presents the frame.
func (g *Game) Render() {
	d := g.display
	b := g.board
	t := g.theme

	d.DrawRect(0, 0, b.Width, b.Height, t.Background)
	d.DrawRect(0, 0, b.Width, b.Height, t.Playfield)

	// Tail first so the head stays on top of a freshly extended segment.
	for i := g.snake.Length() - 1; i > 0; i-- {
		seg := g.snake.Segment(i)
		d.DrawRect(seg.X, seg.Y, b.Tile, b.Tile, t.BodyColor(i))
	}
	head := g.snake.Head()
	d.DrawRect(head.X, head.Y, b.Tile, b.Tile, t.Head)

	d.DrawRect(g.food.X, g.food.Y, b.Tile, b.Tile, t.Food)

	if !g.snake.Easy() {
		w := t.BorderWeight
		d.DrawRect(0, 0, b.Width, w, t.Border)
		d.DrawRect(0, 0, w, b.Height, t.Border)
		d.DrawRect(0, b.Height-w, b.Width, w, t.Border)
		d.DrawRect(b.Width-w, 0, w, b.Height, t.Border)
	}

	d.Present()
}
