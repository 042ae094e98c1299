package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/theirongolddev/tripbook/internal/cli"
	"github.com/theirongolddev/tripbook/internal/config"
	"github.com/theirongolddev/tripbook/internal/gemini"
	"github.com/theirongolddev/tripbook/internal/model"
	"github.com/theirongolddev/tripbook/internal/pipeline"

	"github.com/spf13/cobra"
)

// errNoAPIKey is returned when no Gemini key is configured anywhere.
var errNoAPIKey = errors.New("no API key configured; run `tripbook setup` or set GEMINI_API_KEY")

var (
	flagJSON      bool
	flagGenSample bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Interpret an itinerary and print the booklet",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the booklet as JSON")
	generateCmd.Flags().BoolVar(&flagGenSample, "sample", false, "Use the bundled sample itinerary")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !flagGenSample {
		return errors.New("a file argument or --sample is required")
	}
	doc, err := loadDocument(args, flagGenSample)
	if err != nil {
		return err
	}

	client := gemini.NewClient(config.APIKey(cfg),
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithBaseURL(cfg.Gemini.BaseURL),
	)
	if client == nil {
		return errNoAPIKey
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	progressf("  Interpreting %s (%s characters) with %s...\n",
		doc.Name, cli.FormatNumber(int64(len([]rune(doc.Text)))), client.Model())
	start := time.Now()

	data, err := pipeline.Generate(ctx, client, doc.Text, cfg.Timeout())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%s: %w", pipeline.UserMessage(err), err)
	}
	progressf("  Done in %s\n\n", cli.FormatElapsed(time.Since(start)))

	out := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	printBooklet(out, data)
	return nil
}

// printBooklet writes the cover summary and one table per day.
func printBooklet(w io.Writer, data *model.BookletData) {
	sum := pipeline.Summarize(data)

	dest := sum.Destination
	if dest == "" {
		dest = "Your Trip"
	}
	fmt.Fprint(w, cli.RenderTitle(strings.ToUpper(dest)))
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total spend", cli.FormatMoney(sum.TotalSpend)},
			{"Days", fmt.Sprintf("%d", sum.Days)},
			{"Free days", fmt.Sprintf("%d", sum.FreeDays)},
			{"Events", cli.FormatNumber(int64(sum.Events))},
		},
	}))

	if len(sum.Shares) > 0 {
		rows := make([][]string, 0, len(sum.Shares))
		for _, s := range sum.SharesByAmount() {
			rows = append(rows, []string{s.Category, cli.FormatMoney(s.Amount), cli.RenderShareBar(s.Share, 20)})
		}
		fmt.Fprintln(w)
		fmt.Fprint(w, cli.RenderTable(cli.Table{
			Title:   "Spend breakdown",
			Headers: []string{"Category", "Amount", "Share"},
			Rows:    rows,
		}))
	}
	if !sum.Consistent {
		fmt.Fprintln(w, cli.RenderWarning("breakdown adds up to "+cli.FormatMoney(sum.BreakdownTotal)))
	}

	for i, day := range data.Days {
		fmt.Fprintln(w)
		rows := make([][]string, 0, len(day.Events))
		for _, ev := range day.Events {
			rows = append(rows, []string{ev.Time, ev.Description, ev.Location})
		}
		if len(rows) == 0 {
			rows = append(rows, []string{"", "Free day! No events scheduled.", ""})
		}
		fmt.Fprint(w, cli.RenderTable(cli.Table{
			Title:       fmt.Sprintf("Day %d  %s  %s", i+1, day.Date, day.Weather),
			Headers:     []string{"Time", "Event", "Location"},
			Rows:        rows,
			LeftAligned: true,
		}))
		for _, h := range day.HighlightsOrFallback() {
			fmt.Fprintf(w, "  * %s\n", h)
		}
	}
}
