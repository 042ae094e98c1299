package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/tripbook/internal/config"
	"github.com/theirongolddev/tripbook/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the API key, model and theme",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	existing := config.APIKey(cfg)
	if existing != "" {
		fmt.Printf("\n  Current API key: %s (%s)\n\n", maskAPIKey(existing), config.APIKeySource(cfg))
	}

	vals := tui.NewSetupValues(cfg)
	if err := tui.NewSetupForm(vals, existing == "").Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup canceled; nothing saved.")
			return nil
		}
		return err
	}

	next := cfg
	vals.Apply(&next)
	if err := config.Save(next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cfg = next

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `tripbook setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func maskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
