package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/theirongolddev/tripbook/assets"
	"github.com/theirongolddev/tripbook/internal/config"
	"github.com/theirongolddev/tripbook/internal/logging"
	"github.com/theirongolddev/tripbook/internal/source"
	"github.com/theirongolddev/tripbook/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagSample   bool
	flagEnvFile  string
	flagLogLevel string
	flagQuiet    bool
)

// cfg is loaded once per invocation by the root pre-run hook.
var (
	cfg      = config.DefaultConfig()
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "tripbook [file]",
	Short: "Spreadsheet itineraries as travel booklets",
	Long: "Turn a CSV or Excel trip itinerary into an interactive travel booklet:\n" +
		"a cover with the spend breakdown, then one weather-themed page per day.",
	Args:               cobra.MaximumNArgs(1),
	SilenceUsage:       true,
	PersistentPreRunE:  setupRuntime,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error { return closeLog() },
	RunE:               runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Load environment variables from this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.Flags().BoolVar(&flagSample, "sample", false, "Start with the bundled sample itinerary")
}

// setupRuntime loads .env, the config file and the log file before any
// command runs.
func setupRuntime(_ *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(flagEnvFile); err != nil {
		return fmt.Errorf("loading %s: %w", flagEnvFile, err)
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	cfg = loaded

	logger, closeFn, err := logging.Setup(logging.Config{Level: cfg.Log.Level, Path: cfg.LogPath()})
	if err != nil {
		return err
	}
	closeLog = closeFn
	theme.SetActive(cfg.Appearance.Theme)

	logger.Debug("starting",
		slog.String(logging.FieldComponent, logging.ComponentApp),
		slog.String("config", config.ConfigPath()),
		slog.Bool("config_exists", config.Exists()),
	)
	return nil
}

// loadDocument decodes the file argument, or the embedded sample when
// sample is set. It returns nil when there is neither.
func loadDocument(args []string, sample bool) (*source.Document, error) {
	var (
		doc source.Document
		err error
	)
	switch {
	case sample:
		doc, err = source.Decode(assets.SampleName, assets.Sample)
	case len(args) > 0:
		doc, err = source.LoadFile(args[0])
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func progressf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
