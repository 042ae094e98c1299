// Package theme defines color themes and the spend category palette for the
// tripbook TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Selected row, focused control
	SurfaceBright lipgloss.Color
	Border        lipgloss.Color
	BorderBright  lipgloss.Color // Card borders
	BorderAccent  lipgloss.Color // Focus borders
	TextDim       lipgloss.Color // Hints, disabled controls
	TextMuted     lipgloss.Color // Labels, metadata
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color // Active controls, page indicator
	AccentBright  lipgloss.Color
	AccentDim     lipgloss.Color
	Gold          lipgloss.Color // Cover title and totals
	Green         lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color // Errors
	Blue          lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = Passport

// Passport is the default theme: deep navy pages with gold lettering.
var Passport = Theme{
	Name:          "passport",
	Background:    lipgloss.Color("#0F172A"),
	Surface:       lipgloss.Color("#1E293B"),
	SurfaceHover:  lipgloss.Color("#334155"),
	SurfaceBright: lipgloss.Color("#475569"),
	Border:        lipgloss.Color("#334155"),
	BorderBright:  lipgloss.Color("#64748B"),
	BorderAccent:  lipgloss.Color("#F59E0B"),
	TextDim:       lipgloss.Color("#64748B"),
	TextMuted:     lipgloss.Color("#94A3B8"),
	TextPrimary:   lipgloss.Color("#F8FAFC"),
	Accent:        lipgloss.Color("#38BDF8"),
	AccentBright:  lipgloss.Color("#7DD3FC"),
	AccentDim:     lipgloss.Color("#0C4A6E"),
	Gold:          lipgloss.Color("#FBBF24"),
	Green:         lipgloss.Color("#10B981"),
	Orange:        lipgloss.Color("#F97316"),
	Red:           lipgloss.Color("#EF4444"),
	Blue:          lipgloss.Color("#3B82F6"),
	Yellow:        lipgloss.Color("#FACC15"),
	Magenta:       lipgloss.Color("#EC4899"),
	Cyan:          lipgloss.Color("#06B6D4"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderBright:  lipgloss.Color("#575653"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	AccentDim:     lipgloss.Color("#1A3533"),
	Gold:          lipgloss.Color("#D0A215"),
	Green:         lipgloss.Color("#879A39"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#24837B"),
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    lipgloss.Color("#1A1B26"),
	Surface:       lipgloss.Color("#24283B"),
	SurfaceHover:  lipgloss.Color("#343A52"),
	SurfaceBright: lipgloss.Color("#414868"),
	Border:        lipgloss.Color("#565F89"),
	BorderBright:  lipgloss.Color("#7982A9"),
	BorderAccent:  lipgloss.Color("#7AA2F7"),
	TextDim:       lipgloss.Color("#565F89"),
	TextMuted:     lipgloss.Color("#A9B1D6"),
	TextPrimary:   lipgloss.Color("#C0CAF5"),
	Accent:        lipgloss.Color("#7AA2F7"),
	AccentBright:  lipgloss.Color("#A9C1FF"),
	AccentDim:     lipgloss.Color("#252B3F"),
	Gold:          lipgloss.Color("#E0AF68"),
	Green:         lipgloss.Color("#9ECE6A"),
	Orange:        lipgloss.Color("#FF9E64"),
	Red:           lipgloss.Color("#F7768E"),
	Blue:          lipgloss.Color("#7AA2F7"),
	Yellow:        lipgloss.Color("#E0AF68"),
	Magenta:       lipgloss.Color("#BB9AF7"),
	Cyan:          lipgloss.Color("#7DCFFF"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("3"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	AccentDim:     lipgloss.Color("0"),
	Gold:          lipgloss.Color("11"),
	Green:         lipgloss.Color("2"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{Passport, FlexokiDark, TokyoNight, Terminal}

// Names lists the names of All, in order.
func Names() []string {
	out := make([]string, len(All))
	for i, t := range All {
		out[i] = t.Name
	}
	return out
}

// ByName returns a theme by its name, defaulting to Passport.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Passport
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
