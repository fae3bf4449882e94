package snake

// Snapshot captures the complete game state for determinism testing and the
// game-over summary.
type Snapshot struct {
	Tick      uint64
	State     State
	FirstStep bool // first-step latch still armed
	Score     int
	Length    int
	Lives     int
	HeadX     int
	HeadY     int
	Dir       Direction
	FoodX     int
	FoodY     int
	Speeding  bool
	Easy      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	return Snapshot{
		Tick:      g.tick,
		State:     g.state,
		FirstStep: g.firstStep,
		Score:     g.Score(),
		Length:    g.snake.Length(),
		Lives:     g.snake.Lives(),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       g.snake.Direction(),
		FoodX:     g.food.X,
		FoodY:     g.food.Y,
		Speeding:  g.snake.Speeding(),
		Easy:      g.snake.Easy(),
	}
}
