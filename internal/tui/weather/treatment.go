// Package weather maps a day's weather to its page background and animated
// overlay.
package weather

import (
	"github.com/theirongolddev/tripbook/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// OverlayKind selects the animation drawn over a day page.
type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayRain
	OverlaySnow
)

// Treatment is the visual styling for one weather value.
type Treatment struct {
	Gradient   []lipgloss.Color // top to bottom
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Glow       bool
	Overlay    OverlayKind
	Icon       string
	Label      string
}

var treatments = map[model.Weather]Treatment{
	model.Sunny: {
		Gradient:   []lipgloss.Color{"#F59E0B", "#F97316", "#7C2D12"},
		Foreground: "#FFF7ED",
		Accent:     "#FDE68A",
		Glow:       true,
		Icon:       "☀",
		Label:      "Sunny",
	},
	model.Rainy: {
		Gradient:   []lipgloss.Color{"#334155", "#1E293B", "#0F172A"},
		Foreground: "#E2E8F0",
		Accent:     "#93C5FD",
		Overlay:    OverlayRain,
		Icon:       "☂",
		Label:      "Rainy",
	},
	model.Cloudy: {
		Gradient:   []lipgloss.Color{"#9CA3AF", "#6B7280", "#374151"},
		Foreground: "#F9FAFB",
		Accent:     "#E5E7EB",
		Icon:       "☁",
		Label:      "Cloudy",
	},
	model.Snowy: {
		Gradient:   []lipgloss.Color{"#E0F2FE", "#BAE6FD", "#7DD3FC"},
		Foreground: "#0C4A6E",
		Accent:     "#FFFFFF",
		Overlay:    OverlaySnow,
		Icon:       "❄",
		Label:      "Snowy",
	},
}

// TreatmentFor returns the styling for w. Unknown values get the cloudy look.
func TreatmentFor(w model.Weather) Treatment {
	if t, ok := treatments[w]; ok {
		return t
	}
	t := treatments[model.Cloudy]
	t.Label = string(w)
	return t
}
