package snake

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, expected Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tc := range tests {
		if got := tc.d.Opposite(); got != tc.expected {
			t.Errorf("%s.Opposite() = %s, expected %s", tc.d, got, tc.expected)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		d      Direction
		dx, dy int
	}{
		{DirUp, 0, -16},
		{DirDown, 0, 16},
		{DirLeft, -16, 0},
		{DirRight, 16, 0},
	}

	for _, tc := range tests {
		dx, dy := tc.d.Delta(16)
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%s.Delta(16) = (%d, %d), expected (%d, %d)", tc.d, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestBoardGeometry(t *testing.T) {
	b := testBoard()

	if b.Cols() != 40 || b.Rows() != 30 {
		t.Errorf("Cols/Rows = %d/%d, expected 40/30", b.Cols(), b.Rows())
	}
	if c := b.Center(); c != (Position{X: 320, Y: 240}) {
		t.Errorf("Center() = %+v, expected (320, 240)", c)
	}

	tests := []struct {
		p        Position
		expected bool
	}{
		{Position{0, 0}, true},
		{Position{624, 464}, true},
		{Position{640, 0}, false},
		{Position{0, 480}, false},
		{Position{-16, 0}, false},
		{Position{0, -16}, false},
	}
	for _, tc := range tests {
		if got := b.Contains(tc.p); got != tc.expected {
			t.Errorf("Contains(%+v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestRandomCellOnGrid(t *testing.T) {
	b := testBoard()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		p := b.RandomCell(rng)
		if !b.Contains(p) {
			t.Fatalf("RandomCell() = %+v is off the board", p)
		}
		if p.X%b.Tile != 0 || p.Y%b.Tile != 0 {
			t.Fatalf("RandomCell() = %+v is not tile aligned", p)
		}
	}
}

func TestBoardWrap(t *testing.T) {
	b := testBoard()

	tests := []struct {
		name     string
		p        Position
		d        Direction
		expected Position
	}{
		{"off the top", Position{32, -16}, DirUp, Position{32, 464}},
		{"off the bottom", Position{32, 480}, DirDown, Position{32, 0}},
		{"off the left", Position{-16, 48}, DirLeft, Position{624, 48}},
		{"off the right", Position{640, 48}, DirRight, Position{0, 48}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Wrap(tc.p, tc.d); got != tc.expected {
				t.Errorf("Wrap(%+v, %s) = %+v, expected %+v", tc.p, tc.d, got, tc.expected)
			}
		})
	}
}

func TestDelayCurve(t *testing.T) {
	c := DelayCurve{Base: 100 * time.Millisecond, Step: time.Millisecond, Min: 10 * time.Millisecond}

	if got := c.Delay(1); got != 100*time.Millisecond {
		t.Errorf("Delay(1) = %v, expected 100ms", got)
	}
	if got := c.Delay(51); got != 50*time.Millisecond {
		t.Errorf("Delay(51) = %v, expected 50ms", got)
	}
	if got := c.Delay(500); got != 10*time.Millisecond {
		t.Errorf("Delay(500) = %v, expected 10ms floor", got)
	}

	prev := c.Delay(1)
	for n := 2; n <= 300; n++ {
		d := c.Delay(n)
		if d > prev {
			t.Fatalf("Delay(%d) = %v increased from %v", n, d, prev)
		}
		if d < c.Min {
			t.Fatalf("Delay(%d) = %v below floor %v", n, d, c.Min)
		}
		prev = d
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action core.Action
		dir    Direction
		ok     bool
	}{
		{core.ActionUp, DirUp, true},
		{core.ActionDown, DirDown, true},
		{core.ActionLeft, DirLeft, true},
		{core.ActionRight, DirRight, true},
		{core.ActionPause, 0, false},
		{core.ActionGrow, 0, false},
		{core.ActionNone, 0, false},
	}

	for _, tc := range tests {
		dir, ok := directionFor(tc.action)
		if ok != tc.ok || (ok && dir != tc.dir) {
			t.Errorf("directionFor(%s) = %s, %v, expected %s, %v", tc.action, dir, ok, tc.dir, tc.ok)
		}
	}
}
