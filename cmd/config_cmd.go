package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripbook/internal/config"
	"github.com/theirongolddev/tripbook/internal/tui/theme"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Gemini]")
	if key := config.APIKey(cfg); key != "" {
		fmt.Printf("    API key:  %s (%s)\n", maskAPIKey(key), config.APIKeySource(cfg))
	} else {
		fmt.Println("    API key:  not configured")
	}
	fmt.Printf("    Model:    %s\n", cfg.Gemini.Model)
	if cfg.Gemini.BaseURL != "" {
		fmt.Printf("    Base URL: %s\n", cfg.Gemini.BaseURL)
	}
	fmt.Printf("    Timeout:  %s\n", cfg.Timeout())
	fmt.Println()

	fmt.Println("  [Rotation]")
	fmt.Printf("    Interval: %s\n", cfg.RotationInterval())
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s (available: %s)\n", cfg.Appearance.Theme, strings.Join(theme.Names(), ", "))
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Printf("    File:  %s\n", cfg.LogPath())
	fmt.Println()

	fmt.Println("  Run `tripbook setup` to reconfigure.")
	return nil
}
