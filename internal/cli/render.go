package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Passport)
var (
	ColorBorder    = lipgloss.Color("#334155")
	ColorTextDim   = lipgloss.Color("#64748B")
	ColorTextMuted = lipgloss.Color("#94A3B8")
	ColorText      = lipgloss.Color("#F8FAFC")
	ColorAccent    = lipgloss.Color("#38BDF8")
	ColorGold      = lipgloss.Color("#FBBF24")
	ColorGreen     = lipgloss.Color("#10B981")
	ColorOrange    = lipgloss.Color("#F97316")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGold).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	costStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil

	LeftAligned bool // left-align every column, for text tables
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows. Cells may
// carry ANSI styling; widths are measured on the visible text. A row holding
// the single cell "---" draws a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		measure := func(row []string) {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
		measure(t.Headers)
		for _, row := range t.Rows {
			measure(row)
		}
	}

	rule := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return dimStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
	}
	line := func(row []string, style lipgloss.Style, leftAll bool) string {
		sep := dimStyle.Render("│")
		var b strings.Builder
		b.WriteString(sep)
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := strings.Repeat(" ", max(0, w-lipgloss.Width(cell)))
			if i == 0 || leftAll {
				b.WriteString(style.Render(" " + cell + pad + " "))
			} else {
				b.WriteString(style.Render(" " + pad + cell + " "))
			}
			b.WriteString(sep)
		}
		return b.String() + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}
	b.WriteString(rule("╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(line(t.Headers, headerStyle, true))
		b.WriteString(rule("├", "┼", "┤"))
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		// Columns after the first are right-aligned unless LeftAligned.
		b.WriteString(line(row, valueStyle, t.LeftAligned))
	}
	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

// RenderShareBar renders a fixed-width bar for a 0-1 share followed by its percentage.
func RenderShareBar(share float64, width int) string {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}

	filled := int(share*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return costStyle.Render(bar) + " " + mutedStyle.Render(FormatPercent(share))
}

// RenderWarning renders a single warning line.
func RenderWarning(msg string) string {
	return "  " + warnStyle.Render("! "+msg)
}
