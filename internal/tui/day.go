package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripbook/internal/cli"
	"github.com/theirongolddev/tripbook/internal/model"
	"github.com/theirongolddev/tripbook/internal/tui/components"
	"github.com/theirongolddev/tripbook/internal/tui/weather"

	"github.com/charmbracelet/lipgloss"
)

const freeDayText = "Free day! No events scheduled."

var eventIcons = map[model.EventKind]string{
	model.EventTransport:   "✈",
	model.EventLodging:     "⌂",
	model.EventFood:        "♨",
	model.EventShopping:    "¤",
	model.EventSightseeing: "◉",
}

// renderDay draws one day page on its weather background, with the overlay
// animating in the margins around the content column.
func (a App) renderDay(idx, width, height int) string {
	day := a.sess.Data().Days[idx]
	tr := weather.TreatmentFor(day.Weather)

	cw := min(width-4, maxContentWidth)
	lm := (width - cw) / 2

	content := a.dayContent(idx, day, tr, cw, height)
	lines := strings.Split(content, "\n")
	frame := a.overlay.Frame(width, height)
	dropStyle := lipgloss.NewStyle().Foreground(tr.Accent)

	rows := make([]string, height)
	for i := 0; i < height; i++ {
		var fr []rune
		if i < len(frame) {
			fr = []rune(frame[i])
		}
		seg := func(from, to int) string {
			if from >= len(fr) {
				return strings.Repeat(" ", max(0, to-from))
			}
			s := string(fr[from:min(to, len(fr))])
			if strings.TrimSpace(s) == "" {
				return s
			}
			return dropStyle.Render(s)
		}

		if i >= len(lines) {
			rows[i] = seg(0, width)
			continue
		}
		line := lines[i]
		if w := lipgloss.Width(line); w < cw {
			line += strings.Repeat(" ", cw-w)
		}
		rows[i] = seg(0, lm) + line + seg(lm+cw, width)
	}

	return weather.Paint(strings.Join(rows, "\n"), tr, width, height)
}

func (a App) dayContent(idx int, day model.DayItinerary, tr weather.Treatment, cw, height int) string {
	kickerStyle := lipgloss.NewStyle().Foreground(tr.Accent).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(tr.Foreground).Bold(true)
	if tr.Glow {
		dateStyle = dateStyle.Foreground(tr.Accent)
	}

	kicker := kickerStyle.Render(fmt.Sprintf("DAY %d", idx+1))
	badge := kickerStyle.Render(tr.Icon + " " + tr.Label)
	gap := max(1, cw-lipgloss.Width(kicker)-lipgloss.Width(badge))

	date := day.Date
	if tr.Glow {
		date = "✦ " + date + " ✦"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(kicker + strings.Repeat(" ", gap) + badge)
	b.WriteString("\n")
	b.WriteString(dateStyle.Render(truncStr(date, cw)))
	b.WriteString("\n\n")

	// header (4 lines) and card borders
	maxEvents := max(3, height-8)

	if cw >= twoColumnMin {
		widths := components.LayoutRow(cw, 5)
		schedW := widths[0] + widths[1] + widths[2]
		hlW := cw - schedW
		b.WriteString(components.CardRow([]string{
			components.AccentCard("◷ SCHEDULE", scheduleBody(day.Events, components.CardInnerWidth(schedW), maxEvents, tr), tr.Accent, tr.Foreground, schedW),
			components.AccentCard("✦ HIGHLIGHT", a.highlightBody(idx, components.CardInnerWidth(hlW), tr), tr.Accent, tr.Foreground, hlW),
		}))
	} else {
		hl := components.AccentCard("✦ HIGHLIGHT", a.highlightBody(idx, components.CardInnerWidth(cw), tr), tr.Accent, tr.Foreground, cw)
		remaining := max(3, maxEvents-lipgloss.Height(hl))
		b.WriteString(components.AccentCard("◷ SCHEDULE", scheduleBody(day.Events, components.CardInnerWidth(cw), remaining, tr), tr.Accent, tr.Foreground, cw))
		b.WriteString("\n")
		b.WriteString(hl)
	}
	return b.String()
}

// scheduleBody lists events with a split time column and a kind icon,
// truncated to maxLines.
func scheduleBody(events []model.ItineraryEvent, inner, maxLines int, tr weather.Treatment) string {
	fg := lipgloss.NewStyle().Foreground(tr.Foreground)
	if len(events) == 0 {
		return fg.Italic(true).Render(freeDayText)
	}

	timeStyle := lipgloss.NewStyle().Foreground(tr.Foreground).Bold(true)
	suffixStyle := lipgloss.NewStyle().Foreground(tr.Accent)
	iconStyle := lipgloss.NewStyle().Foreground(tr.Accent)
	descStyle := lipgloss.NewStyle().Foreground(tr.Foreground).Bold(true)
	locStyle := lipgloss.NewStyle().Foreground(tr.Foreground).Faint(true)

	// "hh:mm AM ✈ "
	const timeW = 5
	descW := max(8, inner-timeW-6)

	var lines []string
	for _, ev := range events {
		clock, suffix := cli.SplitTime(ev.Time)
		line := timeStyle.Render(fmt.Sprintf("%*s", timeW, truncStr(clock, timeW))) + " " +
			suffixStyle.Render(fmt.Sprintf("%-2s", truncStr(suffix, 2))) + " " +
			iconStyle.Render(eventIcons[ev.Kind()]) + " " +
			descStyle.Render(truncStr(ev.Description, descW))
		lines = append(lines, line)
		if ev.Location != "" {
			lines = append(lines, strings.Repeat(" ", timeW+6)+locStyle.Render("⌖ "+truncStr(ev.Location, descW-2)))
		}
	}

	if len(lines) > maxLines {
		hidden := len(lines) - (maxLines - 1)
		lines = append(lines[:maxLines-1], fg.Faint(true).Render(fmt.Sprintf("… %d more lines", hidden)))
	}
	return strings.Join(lines, "\n")
}

// highlightBody shows the rotator's current highlight, with position dots
// and manual controls when there is more than one.
func (a App) highlightBody(idx, inner int, tr weather.Treatment) string {
	r := a.sess.Rotator(idx)
	textStyle := lipgloss.NewStyle().Foreground(tr.Foreground).Italic(true).Width(inner)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(textStyle.Render("“" + r.Current() + "”"))
	b.WriteString("\n")
	if r.HasControls() {
		ctrl := lipgloss.NewStyle().Foreground(tr.Accent).Bold(true)
		b.WriteString("\n")
		b.WriteString(ctrl.Render("◀ [") + "  " +
			components.Dots(r.Index(), r.Len(), tr.Accent, tr.Foreground) +
			"  " + ctrl.Render("] ▶"))
	}
	return b.String()
}
