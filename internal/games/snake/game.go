// Package snake implements a single-snake arcade game: the snake entity, the
// loop state machine, and drawing through a core.Display.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the loop state.
type State int

const (
	StatePaused State = iota
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ScoreReporter receives a score line each time the snake grows.
type ScoreReporter interface {
	Score(score int)
}

// Options holds per-run settings that do not come from the config file.
type Options struct {
	Easy bool  // start with wrap-around walls
	Seed int64 // food RNG seed
}

// Game owns the snake, the food and the loop state.
//
// Transitions:
//
//	Running --pause--> Paused --pause/direction--> Running
//	Running/Paused --quit, last life lost--> GameOver
//
// The game starts Running with the first-step latch set: the first tick runs
// and the game pauses right after it, so the player sees the board and the
// snake one tile left of center before anything else happens. If the player
// pauses before that tick, the latch stays set for the next resume.
type Game struct {
	board   Board
	curve   DelayCurve
	idle    time.Duration
	theme   Theme
	display core.Display
	report  ScoreReporter
	rng     *rand.Rand

	snake     *Snake
	food      Position
	state     State
	firstStep bool
	tick      uint64
}

// New creates a game drawing to display and reporting to report.
func New(cfg config.SnakeConfig, display core.Display, report ScoreReporter, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	theme, err := newTheme(cfg)
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	board := Board{
		Width:  cfg.Board.Width,
		Height: cfg.Board.Height,
		Tile:   cfg.Board.TileSize,
	}

	g := &Game{
		board: board,
		curve: DelayCurve{
			Base: cfg.Timing.BaseDelay(),
			Step: cfg.Timing.SpeedIncr(),
			Min:  cfg.Timing.DelayMin(),
		},
		idle:      cfg.Timing.IdlePoll(),
		theme:     theme,
		display:   display,
		report:    report,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		snake:     NewSnake(board, cfg.Rules.Lives, cfg.Rules.EasyThreshold, opts.Easy),
		state:     StateRunning,
		firstStep: true,
	}
	g.food = board.RandomCell(g.rng)
	return g, nil
}

// Frame runs one loop iteration: drain pending input, run at most one tick,
// render it, and return how long to wait before the next iteration.
// Once the game is over Frame does nothing and returns 0.
func (g *Game) Frame() time.Duration {
	if g.state == StateGameOver {
		return 0
	}

	for _, ev := range g.display.PollEvents() {
		g.HandleEvent(ev)
		if g.state == StateGameOver {
			return 0
		}
	}

	if g.state != StateRunning {
		return g.idle
	}
	if g.firstStep {
		g.firstStep = false
		g.state = StatePaused
	}

	g.step()
	if g.state == StateGameOver {
		return 0
	}

	g.Render()
	return g.Delay()
}

// HandleEvent applies one input event. Every command works the same whether
// the game is running or paused.
func (g *Game) HandleEvent(ev core.Event) {
	if g.state == StateGameOver {
		return
	}
	if ev.Type == core.EventQuit {
		g.end()
		return
	}

	if d, ok := directionFor(ev.Action); ok {
		if g.snake.Turn(d) {
			g.state = StateRunning
		}
		return
	}

	switch ev.Action {
	case core.ActionPause:
		if g.state == StateRunning {
			g.state = StatePaused
		} else {
			g.state = StateRunning
		}
	case core.ActionSpeed:
		g.snake.ToggleSpeeding()
	case core.ActionEasy:
		g.snake.ToggleEasy()
	case core.ActionGrow:
		g.grow()
	case core.ActionQuit:
		g.end()
	}
}

// step advances the simulation by one tile and resolves collisions in order:
// walls, self, food.
func (g *Game) step() {
	g.tick++
	g.snake.Advance()

	if g.snake.HitsEdge() {
		if !g.snake.Easy() && g.loseLife() {
			return
		}
		g.snake.WrapHead()
	}

	if g.snake.HitsSelf() && g.loseLife() {
		return
	}

	if g.snake.HitsFood(g.food) {
		g.food = g.board.RandomCell(g.rng)
		g.grow()
	}
}

// loseLife removes a life and ends the game when none remain.
// Returns true if the game ended.
func (g *Game) loseLife() bool {
	if g.snake.LoseLife() {
		g.end()
		return true
	}
	return false
}

func (g *Game) grow() {
	g.report.Score(g.snake.Extend())
}

// end enters GameOver and tears the display down.
// Only the first call has any effect.
func (g *Game) end() {
	if g.state == StateGameOver {
		return
	}
	g.state = StateGameOver
	g.display.Teardown()
}

// Quit ends the game as if the player had quit. It is safe to call after
// the game is already over.
func (g *Game) Quit() {
	g.end()
}

// Delay returns the wait after a rendered tick.
func (g *Game) Delay() time.Duration {
	if g.snake.Speeding() {
		return g.snake.Delay(g.curve)
	}
	return g.curve.Base
}

// Score returns the current score (length - 1).
func (g *Game) Score() int {
	return g.snake.Length() - 1
}

// State returns the loop state.
func (g *Game) State() State {
	return g.state
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.state == StateGameOver
}

// Paused reports whether the simulation is waiting for input.
func (g *Game) Paused() bool {
	return g.state == StatePaused
}
