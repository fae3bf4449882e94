package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the offset of one step of the given size in this direction.
func (d Direction) Delta(step int) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -step
	case DirDown:
		return 0, step
	case DirLeft:
		return -step, 0
	default:
		return step, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directionFor maps a steering action to a direction.
func directionFor(a core.Action) (Direction, bool) {
	if !a.IsDirection() {
		return 0, false
	}
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	default:
		return DirRight, true
	}
}

// Position is a pixel coordinate, always a multiple of the tile size.
type Position struct {
	X, Y int
}

// Board is the playfield: [0, Width) x [0, Height) in pixels, divided into
// square tiles of Tile pixels.
type Board struct {
	Width  int
	Height int
	Tile   int
}

// Bounds returns the playfield rectangle.
func (b Board) Bounds() core.Rect {
	return core.NewRect(0, 0, b.Width, b.Height)
}

// Cols returns the number of tile columns.
func (b Board) Cols() int {
	return b.Width / b.Tile
}

// Rows returns the number of tile rows.
func (b Board) Rows() int {
	return b.Height / b.Tile
}

// Center returns the starting position of the snake.
func (b Board) Center() Position {
	x, y := b.Bounds().Center()
	return Position{X: x, Y: y}
}

// Contains reports whether p lies on the playfield.
func (b Board) Contains(p Position) bool {
	return b.Bounds().Contains(p.X, p.Y)
}

// RandomCell picks a tile uniformly at random.
// The snake body is not consulted; food may land on it.
func (b Board) RandomCell(rng *rand.Rand) Position {
	return Position{
		X: rng.Intn(b.Cols()) * b.Tile,
		Y: rng.Intn(b.Rows()) * b.Tile,
	}
}

// Wrap moves a position that left the board while travelling in dir to the
// opposite boundary. Only the axis of travel changes.
func (b Board) Wrap(p Position, dir Direction) Position {
	switch dir {
	case DirUp:
		p.Y = b.Height - b.Tile
	case DirDown:
		p.Y = 0
	case DirLeft:
		p.X = b.Width - b.Tile
	case DirRight:
		p.X = 0
	}
	return p
}

// DelayCurve maps snake length to the pause between ticks.
type DelayCurve struct {
	Base time.Duration // delay at length 1
	Step time.Duration // removed per extra segment
	Min  time.Duration // floor
}

// Delay returns max(Min, Base - (length-1)*Step).
func (c DelayCurve) Delay(length int) time.Duration {
	d := c.Base - time.Duration(core.Max(length-1, 0))*c.Step
	if d < c.Min {
		return c.Min
	}
	return d
}
