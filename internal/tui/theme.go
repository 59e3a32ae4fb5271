package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette helpers. The TUI must stay readable on light and dark terminals, so
// everything routes through lipgloss.AdaptiveColor.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      = ac("240", "243")
	colorAccent     = ac("92", "135") // purple chrome, matches note pin styling
	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")
	colorError      = ac("160", "203")
	colorSuccess    = ac("28", "78")
	colorWarning    = ac("130", "214")
)

func styleMuted() lipgloss.Style  { return lipgloss.NewStyle().Foreground(colorMuted) }
func styleAccent() lipgloss.Style { return lipgloss.NewStyle().Foreground(colorAccent).Bold(true) }

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg)
}

// hasDarkBackground is queried once; termenv probes the terminal.
var hasDarkBackground = termenv.HasDarkBackground()

func priorityStyle(p string) lipgloss.Style {
	switch p {
	case "URGENT":
		return lipgloss.NewStyle().Foreground(colorError).Bold(true)
	case "HIGH":
		return lipgloss.NewStyle().Foreground(colorWarning)
	case "MEDIUM":
		return lipgloss.NewStyle().Foreground(colorAccent)
	default:
		return styleMuted()
	}
}
