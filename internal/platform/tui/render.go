package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps palette roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorSnakeHead: lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
	core.ColorSnakeBody: lipgloss.NewStyle().Foreground(lipgloss.Color("#388E3C")),
	core.ColorFood:      lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336")),
	core.ColorText:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
	core.ColorHover:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6464FF")).Bold(true),
	core.ColorAlert:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5050")).Bold(true),
	core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorFrame:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
