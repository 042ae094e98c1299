package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1,234,567", FormatMoney(1234567))
	assert.Equal(t, "$1,234.5", FormatMoney(1234.5))
	assert.Equal(t, "$12.25", FormatMoney(12.25))
	assert.Equal(t, "-$40", FormatMoney(-40))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "-12,345", FormatNumber(-12345))
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0s", FormatElapsed(0))
	assert.Equal(t, "1.2s", FormatElapsed(1234*time.Millisecond))
	assert.Equal(t, "1m 15s", FormatElapsed(75*time.Second))
}

func TestSplitTime(t *testing.T) {
	clock, suffix := SplitTime("09:00 AM")
	assert.Equal(t, "09:00", clock)
	assert.Equal(t, "AM", suffix)

	clock, suffix = SplitTime("14:30")
	assert.Equal(t, "14:30", clock)
	assert.Empty(t, suffix)

	clock, suffix = SplitTime("")
	assert.Empty(t, clock)
	assert.Empty(t, suffix)
}

func TestPageLabel(t *testing.T) {
	assert.Equal(t, "START", PageLabel(0, 4))
	assert.Equal(t, "1 / 3", PageLabel(1, 4))
	assert.Equal(t, "3 / 3", PageLabel(3, 4))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Headers:     []string{"Time", "Event"},
		Rows:        [][]string{{"09:00", "Wat Pho"}, {"---"}, {"", "Café"}},
		LeftAligned: true,
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, out, "Wat Pho")
	assert.Contains(t, out, "Café")

	assert.Empty(t, RenderTable(Table{}))
}

func TestRenderShareBar(t *testing.T) {
	out := RenderShareBar(0.5, 10)
	assert.Equal(t, 5, strings.Count(out, "█"))
	assert.Equal(t, 5, strings.Count(out, "░"))
	assert.Contains(t, out, "50.0%")

	assert.Equal(t, 10, strings.Count(RenderShareBar(3, 10), "█"))
}

func TestRenderTable_StyledCellsAlign(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Share"},
		Rows: [][]string{
			{"Food", RenderShareBar(0.25, 8)},
			{"Lodging", RenderShareBar(0.75, 8)},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	for _, l := range lines[1:] {
		assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(l))
	}
}
