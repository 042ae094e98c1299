package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripbook/internal/cli"
	"github.com/theirongolddev/tripbook/internal/model"
	"github.com/theirongolddev/tripbook/internal/pipeline"
	"github.com/theirongolddev/tripbook/internal/tui/components"
	"github.com/theirongolddev/tripbook/internal/tui/theme"
	"github.com/theirongolddev/tripbook/internal/tui/weather"

	"github.com/charmbracelet/lipgloss"
)

// viewBooklet renders the shown page with the navigation bar beneath it.
func (a App) viewBooklet() string {
	t := theme.Active
	nav := a.sess.Navigator()
	pageH := a.height - 3 // nav bar, spacer, status bar

	var page string
	if nav.IsCover() {
		page = fillLinesWithBackground(
			padHeight(truncateHeight(a.renderCover(), pageH), pageH),
			a.width, t.Background)
	} else {
		page = a.renderDay(nav.DayIndex(), a.width, pageH)
	}

	navBar := fillLinesWithBackground(components.RenderNavBar(nav.Page(), nav.TotalPages(), a.width), a.width, t.Background)
	spacer := fillLinesWithBackground("", a.width, t.Background)

	hints := "[←/→]page  [?]help  [q]uit"
	if r := a.sess.Rotator(nav.DayIndex()); r != nil && r.HasControls() {
		hints = "[←/→]page  [ [ ] ]highlight  [?]help  [q]uit"
	}

	status := a.status
	if status != "" && a.statusErr {
		status = lipgloss.NewStyle().Foreground(t.Red).Render(status)
	}
	return page + "\n" + navBar + "\n" + spacer + "\n" + components.RenderStatusBar(a.width, hints, status)
}

// renderCover shows the destination, headline figures and spend breakdown.
func (a App) renderCover() string {
	t := theme.Active
	data := a.sess.Data()
	sum := pipeline.Summarize(data)
	cw := a.contentWidth()

	kickerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	destStyle := lipgloss.NewStyle().Foreground(t.Gold).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n ")
	b.WriteString(kickerStyle.Render("◈ TRAVEL BOOKLET"))
	b.WriteString("\n ")
	dest := sum.Destination
	if dest == "" {
		dest = "Your Trip"
	}
	b.WriteString(destStyle.Render(strings.ToUpper(dest)))
	b.WriteString("\n\n")

	metrics := []components.Metric{
		{Label: "Total spend", Value: cli.FormatMoney(sum.TotalSpend)},
		{Label: "Days", Value: fmt.Sprintf("%d", sum.Days), Note: freeDaysNote(sum.FreeDays)},
		{Label: "Events", Value: cli.FormatNumber(int64(sum.Events))},
	}
	if sum.Largest != "" {
		metrics = append(metrics, components.Metric{Label: "Biggest spend", Value: sum.Largest})
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	if !sum.Consistent {
		b.WriteString(" ")
		b.WriteString(warnStyle.Render(fmt.Sprintf("! Breakdown adds up to %s", cli.FormatMoney(sum.BreakdownTotal))))
		b.WriteString("\n")
	}

	entries := make([]components.ChartEntry, 0, len(sum.Shares))
	for _, s := range sum.Shares {
		color, ok := a.sess.CategoryColor(s.Category)
		if !ok {
			color = t.TextMuted
		}
		entries = append(entries, components.ChartEntry{
			Label:  s.Category,
			Amount: s.Amount,
			Share:  s.Share,
			Color:  color,
		})
	}
	b.WriteString(components.ContentCard("Spend breakdown",
		components.CategoryChart(entries, components.CardInnerWidth(cw)), cw))
	b.WriteString("\n")

	if mix := weatherMix(sum.WeatherDays); mix != "" {
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render("Forecast  " + mix))
		b.WriteString("\n")
	}

	return b.String()
}

func freeDaysNote(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "1 free day"
	default:
		return fmt.Sprintf("%d free days", n)
	}
}

// weatherMix summarizes day counts per weather, in schema order.
func weatherMix(days map[model.Weather]int) string {
	var parts []string
	for _, w := range model.AllWeather {
		if n := days[w]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", weather.TreatmentFor(w).Icon, n))
		}
	}
	return strings.Join(parts, "   ")
}
