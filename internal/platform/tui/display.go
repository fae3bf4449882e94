package tui

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// tileColumns is how many terminal columns one tile spans. Terminal cells
// are about twice as tall as wide, so two columns make a tile look square.
const tileColumns = 2

// statusRows is the number of lines shown under the board.
const statusRows = 1

// Display is the terminal implementation of core.Display.
// Pixels are mapped onto a cell canvas: one tile becomes tileColumns cells.
// Key events are queued by the Bubble Tea model and drained by PollEvents.
type Display struct {
	width   int // pixels
	height  int // pixels
	tile    int // pixels per tile
	canvas  *core.Screen
	styles  styleCache
	frame   string
	pending []core.Event
	closed  bool
}

// InitDisplay checks that stdout is a terminal large enough for a board of
// the given pixel size and returns a display for it.
func InitDisplay(width, height, tile int) (*Display, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("tui: stdout is not a terminal")
	}

	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot read terminal size: %w", err)
	}

	d := newDisplay(width, height, tile)
	needW, needH := d.Columns(), d.canvas.Height()+statusRows
	if cols < needW || rows < needH {
		return nil, fmt.Errorf("tui: terminal is %dx%d, need at least %dx%d", cols, rows, needW, needH)
	}
	return d, nil
}

func newDisplay(width, height, tile int) *Display {
	return &Display{
		width:  width,
		height: height,
		tile:   tile,
		canvas: core.NewScreen(width/tile*tileColumns, height/tile),
		styles: make(styleCache),
	}
}

// Columns returns the width of the board in terminal columns.
func (d *Display) Columns() int {
	return d.canvas.Width()
}

// DrawRect fills the tiles covered by the rectangle. Tiles covered only in
// part (thin border strips) get a line glyph along the covered edge and keep
// their background.
func (d *Display) DrawRect(x, y, w, h int, c core.Color) {
	if d.closed {
		return
	}
	r := core.NewRect(x, y, w, h).Intersect(core.NewRect(0, 0, d.width, d.height))
	if r.Empty() {
		return
	}

	t := d.tile
	for ty := r.Y / t; ty*t < r.Bottom(); ty++ {
		for tx := r.X / t; tx*t < r.Right(); tx++ {
			tile := core.NewRect(tx*t, ty*t, t, t)
			d.paintTile(tx, ty, tile.Intersect(r), tile, c)
		}
	}
}

func (d *Display) paintTile(tx, ty int, part, tile core.Rect, c core.Color) {
	cx := tx * tileColumns
	if part == tile {
		for i := range tileColumns {
			d.canvas.Set(cx+i, ty, core.Cell{Rune: ' ', Fg: c, Bg: c})
		}
		return
	}

	glyph, first, last := edgeGlyph(part, tile)
	for i := first; i <= last; i++ {
		cell := d.canvas.GetCell(cx+i, ty)
		cell.Rune = glyph
		cell.Fg = c
		d.canvas.Set(cx+i, ty, cell)
	}
}

// edgeGlyph picks a line glyph for a rectangle that covers part of a tile and
// the range of the tile's columns it is drawn in.
func edgeGlyph(part, tile core.Rect) (glyph rune, first, last int) {
	switch {
	case part.W == tile.W && part.Y == tile.Y:
		return '▔', 0, tileColumns - 1
	case part.W == tile.W:
		return '▁', 0, tileColumns - 1
	case part.H == tile.H && part.X == tile.X:
		return '▏', 0, 0
	case part.H == tile.H:
		return '▕', tileColumns - 1, tileColumns - 1
	default:
		return '▪', 0, tileColumns - 1
	}
}

// Present renders the canvas into the frame shown by the model.
func (d *Display) Present() {
	if d.closed {
		return
	}
	d.frame = d.styles.RenderScreen(d.canvas)
}

// Push queues an event for the next PollEvents.
func (d *Display) Push(ev core.Event) {
	if d.closed {
		return
	}
	d.pending = append(d.pending, ev)
}

// PollEvents returns and clears the queued events.
func (d *Display) PollEvents() []core.Event {
	evs := d.pending
	d.pending = nil
	return evs
}

// Teardown stops accepting draws and events. The terminal itself is restored
// when the Bubble Tea program exits.
func (d *Display) Teardown() {
	d.closed = true
	d.pending = nil
}

// View returns the last presented frame.
func (d *Display) View() string {
	return d.frame
}

var _ core.Display = (*Display)(nil)
