package core

// Display is the rendering backend the game draws through.
// Coordinates are in pixels; the backend decides how pixels map to its surface.
// Implementations are created already initialized and must tolerate calls
// after Teardown (they become no-ops).
type Display interface {
	// DrawRect fills a rectangle with a solid color.
	DrawRect(x, y, w, h int, c Color)

	// Present commits everything drawn since the previous Present as one frame.
	Present()

	// PollEvents returns all pending events in arrival order without blocking.
	// The queue is empty afterwards.
	PollEvents() []Event

	// Teardown releases the rendering surface.
	Teardown()
}
