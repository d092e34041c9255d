package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
// Tile colors warm up as values grow, like the classic palette.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorCyan:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorTile2:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorTile4:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorTile8:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
	core.ColorTile16:    lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	core.ColorTile32:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorTile64:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorTile128:   lipgloss.NewStyle().Foreground(lipgloss.Color("227")),
	core.ColorTile256:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorTile512:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorTile1024:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	core.ColorTile2048:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorTileSuper: lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
