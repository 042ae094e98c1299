package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/tripbook/assets"

	"github.com/spf13/cobra"
)

var (
	flagOutput string
	flagForce  bool
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write the itinerary template CSV",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeAsset(cmd, assets.TemplateName, assets.Template)
	},
}

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Write the itinerary formatting guide",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeAsset(cmd, assets.GuideName, assets.Guide)
	},
}

func init() {
	for _, c := range []*cobra.Command{templateCmd, guideCmd} {
		c.Flags().StringVarP(&flagOutput, "output", "o", "", "Destination path, or - for stdout")
		c.Flags().BoolVarP(&flagForce, "force", "f", false, "Overwrite an existing file")
		rootCmd.AddCommand(c)
	}
}

func writeAsset(cmd *cobra.Command, name string, data []byte) error {
	path := flagOutput
	if path == "" {
		path = name
	}
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := assets.Write(path, data, flagForce); err != nil {
		if errors.Is(err, assets.ErrExists) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return err
	}
	progressf("  Saved %s\n", path)
	return nil
}
