package components

import (
	"github.com/theirongolddev/tripbook/internal/cli"
	"github.com/theirongolddev/tripbook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderNavBar renders the page controls centered in width: a back control
// (dimmed on the cover), the page indicator and either a next control or,
// on the last page, Finish.
func RenderNavBar(page, totalPages, width int) string {
	t := theme.Active

	enabled := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Padding(0, 1)

	disabled := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface).
		Padding(0, 1)

	indicator := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true).
		Padding(0, 2)

	finish := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Red).
		Bold(true).
		Padding(0, 2)

	back := enabled.Render("◀ h")
	if page == 0 {
		back = disabled.Render("◀ h")
	}

	var forward string
	if page >= totalPages-1 {
		forward = finish.Render("FINISH f")
	} else {
		forward = enabled.Render("l ▶")
	}

	bar := back + "   " + indicator.Render(cli.PageLabel(page, totalPages)) + "   " + forward
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
}
