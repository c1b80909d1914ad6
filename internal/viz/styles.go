package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/kinelab/internal/sim"
)

// Styles are rebuilt from CurrentTheme on every render so a theme switch
// applies immediately.
func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Primary)
}

func subtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Width(12)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Text).Bold(true)
}

func activeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Secondary).Bold(true)
}

func canvasStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Padding(0, 1)
}

func panelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(CurrentTheme.Muted).
		Padding(0, 2).
		Width(40)
}

func boxStyle(selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Muted).
		Padding(1, 2).
		Width(24)
	if selected {
		s = s.BorderForeground(CurrentTheme.Secondary)
	}
	return s
}

func statusStyle(running, done bool) lipgloss.Style {
	switch {
	case done:
		return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Accent)
	case running:
		return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Success)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Warning)
}

// Slider renders a parameter as a fixed width bar within its bounds.
func Slider(b sim.Bounds, v float64, width int) string {
	ratio := 0.0
	if b.Max > b.Min {
		ratio = (b.Clamp(v) - b.Min) / (b.Max - b.Min)
	}
	filled := int(ratio*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// KeyHints renders "key action" pairs for the footer.
func KeyHints(pairs ...string) string {
	keyStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Bold(true)
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, keyStyle.Render(pairs[i])+subtleStyle().Render(" "+pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}

func Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	return subtleStyle().Render(strings.Repeat("─", mid-2) + " ◆ " + strings.Repeat("─", width-mid-2))
}

func statRow(label string, value float64, unit string) string {
	return labelStyle().Render(label) + valueStyle().Render(fmt.Sprintf("%.2f %s", value, unit)) + "\n"
}
