package theme

import "github.com/charmbracelet/lipgloss"

// CategoryPalette colors spend categories in order of first appearance.
// It cycles when a trip has more categories than colors.
var CategoryPalette = []lipgloss.Color{
	"#ef4444", "#3b82f6", "#10b981", "#f59e0b",
	"#8b5cf6", "#ec4899", "#06b6d4", "#84cc16",
	"#6366f1", "#d946ef", "#14b8a6", "#f97316",
}

// CategoryColors assigns a palette color to each distinct category, keyed by
// the category label. Repeated labels keep their first color.
func CategoryColors(categories []string) map[string]lipgloss.Color {
	out := make(map[string]lipgloss.Color, len(categories))
	next := 0
	for _, c := range categories {
		if _, ok := out[c]; ok {
			continue
		}
		out[c] = CategoryPalette[next%len(CategoryPalette)]
		next++
	}
	return out
}
