package snake

import "time"

// Snake is the player entity: an ordered body with the head at index 0.
type Snake struct {
	board         Board
	body          []Position
	direction     Direction
	lives         int
	speeding      bool
	easy          bool
	easyThreshold int
}

// NewSnake creates a one-segment snake at the board center heading left.
func NewSnake(board Board, lives, easyThreshold int, easy bool) *Snake {
	body := make([]Position, 1, 64)
	body[0] = board.Center()
	return &Snake{
		board:         board,
		body:          body,
		direction:     DirLeft,
		lives:         lives,
		speeding:      true,
		easy:          easy,
		easyThreshold: easyThreshold,
	}
}

// Head returns the head position.
func (s *Snake) Head() Position {
	return s.body[0]
}

// Segment returns the i-th segment (0 is the head).
func (s *Snake) Segment(i int) Position {
	return s.body[i]
}

// Length returns the number of segments.
func (s *Snake) Length() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Lives returns the remaining lives.
func (s *Snake) Lives() int {
	return s.lives
}

// Speeding reports whether the tick delay scales with length.
func (s *Snake) Speeding() bool {
	return s.speeding
}

// Easy reports whether walls wrap without costing a life.
func (s *Snake) Easy() bool {
	return s.easy
}

// ToggleSpeeding flips length-based speed.
func (s *Snake) ToggleSpeeding() {
	s.speeding = !s.speeding
}

// ToggleEasy flips wrap-around walls.
func (s *Snake) ToggleEasy() {
	s.easy = !s.easy
}

// Turn sets the heading unless d is the exact reverse of the current one.
// Returns whether the heading was accepted.
func (s *Snake) Turn(d Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// Advance shifts every segment onto its predecessor and moves the head one
// tile in the current direction.
func (s *Snake) Advance() {
	copy(s.body[1:], s.body[:len(s.body)-1])
	dx, dy := s.direction.Delta(s.board.Tile)
	s.body[0].X += dx
	s.body[0].Y += dy
}

// Extend appends a segment duplicating the tail; the next Advance moves it
// into place. Reaching the easy threshold turns easy mode on.
// Returns the new score (length - 1).
func (s *Snake) Extend() int {
	s.body = append(s.body, s.body[len(s.body)-1])
	if len(s.body) >= s.easyThreshold {
		s.easy = true
	}
	return len(s.body) - 1
}

// HitsFood reports whether the head is on the food.
func (s *Snake) HitsFood(food Position) bool {
	return s.body[0] == food
}

// HitsEdge reports whether the head has left the board.
func (s *Snake) HitsEdge() bool {
	return !s.board.Contains(s.body[0])
}

// HitsSelf reports whether the head overlaps any other segment.
func (s *Snake) HitsSelf() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// WrapHead moves an off-board head to the opposite boundary.
func (s *Snake) WrapHead() {
	s.body[0] = s.board.Wrap(s.body[0], s.direction)
}

// Delay returns the tick delay for the current length.
func (s *Snake) Delay(curve DelayCurve) time.Duration {
	return curve.Delay(len(s.body))
}

// LoseLife removes one life and reports whether none are left.
func (s *Snake) LoseLife() bool {
	s.lives--
	return s.lives <= 0
}
