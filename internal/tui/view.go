package tui

import (
	"fmt"
	"strings"

	"appcolors/internal/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// neutral is the background while resolving or when nothing resolved.
const neutral color.RGB = 0x303030

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	bg := neutral
	if !m.resolving && m.err == nil && m.result.Found {
		bg = m.result.Color
	}
	fg := color.Contrast(bg)

	lines := []string{m.opts.Package, "", m.statusLine()}
	if m.status != "" {
		lines = append(lines, m.status)
	}
	lines = append(lines, "")
	lines = append(lines, m.traceLines(m.height-len(lines)-2)...)

	body := make([]string, len(lines))
	for i, l := range lines {
		body[i] = truncate(l, m.width-2)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, body...)
	page := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height-1).
		Padding(0, 1).
		Foreground(fg.Lipgloss()).
		Background(bg.Lipgloss()).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, page, m.helpLine(fg, bg))
}

func (m model) statusLine() string {
	switch {
	case m.resolving:
		return m.spinner.View() + " Resolving..."
	case m.err != nil:
		return fmt.Sprintf("Error: %v", m.err)
	case !m.result.Found:
		return "No color found"
	default:
		return fmt.Sprintf("%s  (%s)", m.result.Color.Hex(), m.result.Source)
	}
}

// traceLines returns the newest log lines that fit in n rows.
func (m model) traceLines(n int) []string {
	if n <= 0 || len(m.trace) == 0 {
		return nil
	}
	if len(m.trace) > n {
		return m.trace[len(m.trace)-n:]
	}
	return m.trace
}

func (m model) helpLine(fg, bg color.RGB) string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Foreground(fg.Lipgloss()).
		Background(bg.Lipgloss()).
		Faint(true).
		Render(truncate(strings.Join(parts, "  •  "), m.width-2))
}

// truncate shortens s to width display cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
