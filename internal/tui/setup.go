package tui

import (
	"errors"
	"strings"

	"github.com/theirongolddev/tripbook/internal/config"
	"github.com/theirongolddev/tripbook/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the setup form.
type SetupValues struct {
	APIKey string
	Model  string
	Theme  string
}

// NewSetupValues seeds the form from cfg. The key field starts empty so an
// existing key is kept unless the user types a new one.
func NewSetupValues(cfg config.Config) *SetupValues {
	return &SetupValues{
		Model: cfg.Gemini.Model,
		Theme: theme.ByName(cfg.Appearance.Theme).Name,
	}
}

// Apply copies the answers into cfg.
func (v *SetupValues) Apply(cfg *config.Config) {
	if key := strings.TrimSpace(v.APIKey); key != "" {
		cfg.Gemini.APIKey = key
	}
	if m := strings.TrimSpace(v.Model); m != "" {
		cfg.Gemini.Model = m
	}
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
}

// NewSetupForm builds the configuration form. requireKey makes an empty key
// an error, for first runs where no key is configured anywhere.
func NewSetupForm(v *SetupValues, requireKey bool) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	keyDesc := "Used to interpret itineraries. Leave blank to keep the current key."
	if requireKey {
		keyDesc = "Used to interpret itineraries. Get one from Google AI Studio."
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to tripbook").
				Description("Turn a spreadsheet itinerary into a travel booklet.\nA few settings first."),
			huh.NewInput().
				Title("Gemini API key").
				Description(keyDesc).
				EchoMode(huh.EchoModePassword).
				Value(&v.APIKey).
				Validate(func(s string) error {
					if requireKey && strings.TrimSpace(s) == "" {
						return errors.New("an API key is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Model").
				Placeholder("gemini-2.5-pro").
				Value(&v.Model),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
		),
	).WithShowHelp(true)
}

// saveSetup writes the form answers and rebuilds the interpreter. A save
// failure is reported but the answers still apply to this run.
func (a *App) saveSetup() {
	cfg := a.cfg
	a.setupVals.Apply(&cfg)
	theme.SetActive(cfg.Appearance.Theme)
	a.cfg = cfg
	a.interp = newInterpreter(cfg)

	if err := config.Save(cfg); err != nil {
		a.log.Warn("saving config failed", "error", err)
		a.setStatus("Could not save config: "+err.Error(), true)
		return
	}
	a.setStatus("Saved to "+config.ConfigPath(), false)
}
