package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/tripbook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func TestCategoryChartOrderAndLegend(t *testing.T) {
	theme.SetActive("passport")

	entries := []ChartEntry{
		{Label: "Hotel", Amount: 1200, Share: 0.6, Color: "#EC4899"},
		{Label: "Food", Amount: 800, Share: 0.4, Color: "#06B6D4"},
	}
	out := CategoryChart(entries, 60)

	hotel := strings.Index(out, "Hotel")
	food := strings.Index(out, "Food")
	if hotel < 0 || food < 0 || hotel > food {
		t.Fatalf("bars out of order:\n%s", out)
	}
	if !strings.Contains(out, "$1,200") {
		t.Error("amount missing")
	}
	if strings.Count(out, "■") != 2 {
		t.Errorf("legend should have one swatch per category:\n%s", out)
	}
}

func TestCategoryChartEmpty(t *testing.T) {
	theme.SetActive("passport")
	if !strings.Contains(CategoryChart(nil, 40), "No spend") {
		t.Error("empty chart should say so")
	}
}

func TestLegendWraps(t *testing.T) {
	entries := []ChartEntry{
		{Label: "Accommodation", Color: "1"},
		{Label: "Transportation", Color: "2"},
		{Label: "Sightseeing", Color: "3"},
	}
	out := Legend(entries, 30)
	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		t.Fatalf("legend should wrap at width 30:\n%s", out)
	}
	for _, l := range lines {
		if lipgloss.Width(l) > 30 {
			t.Errorf("legend line too wide: %q", l)
		}
	}
}

func TestNavBar(t *testing.T) {
	theme.SetActive("passport")

	cover := RenderNavBar(0, 4, 60)
	if !strings.Contains(cover, "START") || strings.Contains(cover, "FINISH") {
		t.Errorf("cover nav bar: %q", cover)
	}

	mid := RenderNavBar(2, 4, 60)
	if !strings.Contains(mid, "2 / 3") {
		t.Errorf("day nav bar should show page indicator: %q", mid)
	}

	last := RenderNavBar(3, 4, 60)
	if !strings.Contains(last, "FINISH") {
		t.Errorf("last page should offer finish: %q", last)
	}
	if w := lipgloss.Width(last); w != 60 {
		t.Errorf("nav bar width = %d, want 60", w)
	}
}

func TestDots(t *testing.T) {
	if Dots(0, 1, "1", "2") != "" {
		t.Error("single item has no dots")
	}
	out := Dots(1, 3, "1", "2")
	if strings.Count(out, "●") != 1 || strings.Count(out, "○") != 2 {
		t.Errorf("Dots(1, 3) = %q", out)
	}
}
