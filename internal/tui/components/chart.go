package components

import (
	"strings"

	"github.com/theirongolddev/tripbook/internal/cli"
	"github.com/theirongolddev/tripbook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ChartEntry is one category in the spend chart.
type ChartEntry struct {
	Label  string
	Amount float64
	Share  float64 // 0.0-1.0 of the breakdown total
	Color  lipgloss.Color
}

const (
	chartLabelMax  = 16
	chartAmountMin = 8
	minChartBar    = 8
)

// CategoryChart renders one horizontal bar per entry, in the given order,
// followed by a legend. width is the usable text width.
func CategoryChart(entries []ChartEntry, width int) string {
	t := theme.Active
	if len(entries) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Italic(true).Render("No spend recorded.")
	}

	labelW := 0
	amounts := make([]string, len(entries))
	amountW := chartAmountMin
	for i, e := range entries {
		if n := len([]rune(e.Label)); n > labelW {
			labelW = n
		}
		amounts[i] = cli.FormatMoney(e.Amount)
		if n := len(amounts[i]); n > amountW {
			amountW = n
		}
	}
	if labelW > chartLabelMax {
		labelW = chartLabelMax
	}

	// label + space + bar + space + "100%" + two spaces + amount
	barW := width - labelW - amountW - 8
	if barW < minChartBar {
		barW = minChartBar
	}

	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, e := range entries {
		b.WriteString(ShareBar(e.Label, e.Share, e.Color, labelW, barW))
		b.WriteString("  ")
		b.WriteString(amountStyle.Render(padLeft(amounts[i], amountW)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Legend(entries, width))
	return b.String()
}

// Legend renders "■ label" swatches, wrapping at width.
func Legend(entries []ChartEntry, width int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var lines []string
	line := ""
	lineW := 0
	for _, e := range entries {
		item := lipgloss.NewStyle().Foreground(e.Color).Render("■") + " " + labelStyle.Render(e.Label)
		itemW := lipgloss.Width(item)
		if lineW > 0 && lineW+3+itemW > width {
			lines = append(lines, line)
			line, lineW = "", 0
		}
		if lineW > 0 {
			line += "   "
			lineW += 3
		}
		line += item
		lineW += itemW
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func padLeft(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}
