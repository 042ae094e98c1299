package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/tripbook/internal/cli"
	"github.com/theirongolddev/tripbook/internal/source"

	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file>",
	Short: "Print the text a spreadsheet is reduced to before interpretation",
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	doc, err := source.LoadFile(args[0])
	if err != nil {
		return err
	}

	rows := 0
	if doc.Text != "" {
		rows = strings.Count(doc.Text, "\n") + 1
	}
	progressf("  %s: %s, %s rows, %s characters\n",
		doc.Name, doc.Format,
		cli.FormatNumber(int64(rows)),
		cli.FormatNumber(int64(len([]rune(doc.Text)))),
	)

	fmt.Fprintln(cmd.OutOrStdout(), doc.Text)
	return nil
}
