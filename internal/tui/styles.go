package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kmorris/wifitester/internal/settings"
)

// palette is one theme's color set.
type palette struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Text    lipgloss.Color
	Subtle  lipgloss.Color
	Border  lipgloss.Color
}

var (
	darkPalette = palette{
		Primary: lipgloss.Color("#7D56F4"), // Purple
		Success: lipgloss.Color("#43BF6D"), // Green
		Error:   lipgloss.Color("#FF5555"), // Red
		Warning: lipgloss.Color("#FFA500"), // Orange
		Text:    lipgloss.Color("#FFFFFF"), // White
		Subtle:  lipgloss.Color("#626262"), // Gray
		Border:  lipgloss.Color("#7D56F4"),
	}

	lightPalette = palette{
		Primary: lipgloss.Color("#5B3DB8"),
		Success: lipgloss.Color("#1F7A3D"),
		Error:   lipgloss.Color("#C0392B"),
		Warning: lipgloss.Color("#B8860B"),
		Text:    lipgloss.Color("#1A1A1A"),
		Subtle:  lipgloss.Color("#767676"),
		Border:  lipgloss.Color("#5B3DB8"),
	}
)

// active is the palette in effect. Only mutated from the UI loop via
// ApplyTheme, read by the style constructors below.
var active = darkPalette

// ApplyTheme switches the active palette. The system theme maps to dark;
// terminals do not reliably report their background.
func ApplyTheme(t settings.Theme) {
	switch t {
	case settings.ThemeLight:
		active = lightPalette
	default:
		active = darkPalette
	}
}

// Layout constants
const (
	MinTerminalWidth = 60
	MaxContentWidth  = 110
)

// Style constructors. These read the active palette at call time so theme
// changes apply on the next render.

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Primary).
		Bold(true).
		Padding(1, 0)
}

func subtitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Subtle).
		Italic(true)
}

func warningBannerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Warning).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(active.Warning).
		Padding(0, 1)
}

func errorTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Error).
		Bold(true)
}

func successTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Success).
		Bold(true)
}

func infoTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Subtle)
}

func rowStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		PaddingLeft(2).
		Foreground(active.Text)
}

func selectedRowStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		PaddingLeft(0).
		Foreground(active.Success).
		Bold(true)
}

func fieldLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Subtle).
		Width(24)
}

func fieldValueStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Text)
}

func spinnerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(active.Primary)
}

func modalStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(active.Warning).
		Padding(1, 2)
}

// contentWidth clamps a terminal width into the usable range.
func contentWidth(w int) int {
	if w < MinTerminalWidth {
		return MinTerminalWidth
	}
	if w > MaxContentWidth {
		return MaxContentWidth
	}
	return w
}
