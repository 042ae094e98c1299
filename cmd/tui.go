package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/theirongolddev/tripbook/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Open the interactive booklet viewer",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&flagSample, "sample", false, "Start with the bundled sample itinerary")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, args []string) error {
	doc, err := loadDocument(args, flagSample)
	if err != nil {
		return err
	}

	// Weather backgrounds are drawn with explicit ANSI codes; without a
	// forced profile lipgloss may fall back to Ascii.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Config:   cfg,
		Document: doc,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
