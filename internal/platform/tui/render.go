package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellStyle identifies a foreground/background pair.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache maps color pairs to lipgloss styles so each pair is built once.
type styleCache map[cellStyle]lipgloss.Style

// hexColor converts an RGB color to a lipgloss color.
func hexColor(c core.Color) lipgloss.Color {
	cf := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	return lipgloss.Color(cf.Hex())
}

func (sc styleCache) get(fg, bg core.Color) lipgloss.Style {
	key := cellStyle{fg: fg, bg: bg}
	if style, ok := sc[key]; ok {
		return style
	}
	style := lipgloss.NewStyle().
		Foreground(hexColor(fg)).
		Background(hexColor(bg))
	sc[key] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (sc styleCache) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sc.get(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
