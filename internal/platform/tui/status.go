package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StatusLine is an io.Writer that keeps the last non-empty line written to
// it, truncated to the board width when shown.
type StatusLine struct {
	last  string
	width int
}

// NewStatusLine creates a status line no wider than width columns.
func NewStatusLine(width int) *StatusLine {
	return &StatusLine{width: width}
}

// Write records the last non-empty line of p.
func (s *StatusLine) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		line = strings.TrimRight(line, "\r ")
		if line != "" {
			s.last = line
		}
	}
	return len(p), nil
}

// String returns the line to display.
func (s *StatusLine) String() string {
	return runewidth.Truncate(s.last, s.width, "…")
}

// Width returns the maximum width in columns.
func (s *StatusLine) Width() int {
	return s.width
}
