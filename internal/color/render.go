package color

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	inkDark  RGB = 0x111111
	inkLight RGB = 0xFFFFFF
)

// Initialize tells lipgloss which background the terminal has so adaptive
// colors render correctly.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Lipgloss converts c for use in lipgloss styles.
func (c RGB) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Contrast picks a readable foreground for text drawn on top of c.
func Contrast(c RGB) RGB {
	if c.Lightness() > 0.6 {
		return inkDark
	}
	return inkLight
}

// Swatch renders a block of width cells filled with c.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = 1
	}
	return lipgloss.NewStyle().
		Background(c.Lipgloss()).
		Render(strings.Repeat(" ", width))
}

// Label renders the hex value of c on a background of c itself.
func Label(c RGB) string {
	return lipgloss.NewStyle().
		Background(c.Lipgloss()).
		Foreground(Contrast(c).Lipgloss()).
		Bold(true).
		Padding(0, 1).
		Render(c.Hex())
}
