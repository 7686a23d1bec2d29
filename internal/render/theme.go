package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/match3/internal/core"
)

// Theme maps screen colors to terminal styles.
type Theme struct {
	Styles map[core.Color]lipgloss.Style
}

// DefaultTheme returns the default tile palette.
func DefaultTheme() Theme {
	return Theme{
		Styles: map[core.Color]lipgloss.Style{
			core.ColorDefault: lipgloss.NewStyle(),
			core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
			core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
			core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
			core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // Hot pink
			core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
			core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
			core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

// Plain returns the screen as text without escape sequences.
func Plain(s *core.Screen) string {
	return s.String()
}

// Styled converts a screen to a styled string for a terminal.
// Adjacent cells with the same color are grouped to minimize ANSI escape
// sequences.
func Styled(s *core.Screen, th Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
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

			style, ok := th.Styles[startColor]
			if !ok {
				style = th.Styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
