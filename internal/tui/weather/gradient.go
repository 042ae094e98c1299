package weather

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// RowColors spreads the gradient stops over rows lines, blending in Lab
// space between neighbouring stops.
func RowColors(stops []lipgloss.Color, rows int) []lipgloss.Color {
	if rows <= 0 {
		return nil
	}
	out := make([]lipgloss.Color, rows)
	if len(stops) == 0 {
		return out
	}

	parsed := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(string(s))
		if err != nil {
			// ANSI index or bad hex: no blending possible.
			for j := range out {
				out[j] = stops[0]
			}
			return out
		}
		parsed[i] = c
	}

	if len(parsed) == 1 || rows == 1 {
		for j := range out {
			out[j] = stops[0]
		}
		return out
	}

	segments := float64(len(parsed) - 1)
	for j := 0; j < rows; j++ {
		pos := float64(j) / float64(rows-1) * segments
		seg := int(pos)
		if seg >= len(parsed)-1 {
			seg = len(parsed) - 2
		}
		frac := pos - float64(seg)
		switch {
		case frac <= 0:
			out[j] = stops[seg]
		case frac >= 1:
			out[j] = stops[seg+1]
		default:
			blended := parsed[seg].BlendLab(parsed[seg+1], frac).Clamped()
			out[j] = lipgloss.Color(blended.Hex())
		}
	}
	return out
}

// Paint places content lines on the treatment's gradient, padding every line
// to width and the block to height. Styled segments inside content keep the
// row background after they reset.
func Paint(content string, t Treatment, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	colors := RowColors(t.Gradient, height)

	var b strings.Builder
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		style := lipgloss.NewStyle().Background(colors[i]).Foreground(t.Foreground)
		b.WriteString(style.Render(KeepBackground(line, colors[i])))
		if i < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

var resetSeq = termenv.CSI + termenv.ResetSeq + "m"

// KeepBackground re-applies bg after every SGR reset in line so an outer
// background survives nested styles.
func KeepBackground(line string, bg lipgloss.Color) string {
	c := lipgloss.ColorProfile().Color(string(bg))
	if c == nil || !strings.Contains(line, resetSeq) {
		return line
	}
	return strings.ReplaceAll(line, resetSeq, resetSeq+termenv.CSI+c.Sequence(true)+"m")
}
