package components

import (
	"fmt"

	"github.com/theirongolddev/tripbook/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders a labeled bar for a 0-1 share with its percentage.
func ShareBar(label string, share float64, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active

	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	if barWidth < 4 {
		barWidth = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.SurfaceHover)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(label, labelW))) +
		" " +
		bar.ViewAs(share) +
		" " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", share*100))
}

// Dots renders a position indicator such as "○ ● ○" for n items.
func Dots(active, n int, on, off lipgloss.Color) string {
	if n <= 1 {
		return ""
	}
	onStyle := lipgloss.NewStyle().Foreground(on)
	offStyle := lipgloss.NewStyle().Foreground(off)

	out := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			out += " "
		}
		if i == active {
			out += onStyle.Render("●")
		} else {
			out += offStyle.Render("○")
		}
	}
	return out
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
