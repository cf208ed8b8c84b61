package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/webtime/internal/analyzer"
	"github.com/blackwell-systems/webtime/internal/output"
)

var reportPeriod string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Headline usage summary for a period",
	Long: `Compute total time, most visited site, and the annualized outlook for
the chosen period, each with a trend against the previous period.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportPeriod, "period", "day", "Period: day, week, month, or year")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	p, ok := analyzer.ParsePeriod(reportPeriod)
	if !ok {
		return fmt.Errorf("unknown period %q", reportPeriod)
	}

	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagNoColor {
		output.SetNoColor(true)
	}

	visits, err := db.ListVisits()
	if err != nil {
		return fmt.Errorf("listing visits: %w", err)
	}

	summary := analyzer.Summarize(visits, p, time.Now())

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(summary)
	}

	fmt.Println(output.Section(fmt.Sprintf("Usage summary (%s)", p)))
	fmt.Printf(" %-18s %s  %s\n", "Total time:",
		output.StyleBold.Render(output.FormatDuration(summary.TotalSeconds)),
		output.TrendPercent(summary.TotalTrend))
	if summary.MostVisited.Domain != "" {
		fmt.Printf(" %-18s %s (%s, %d%%)\n", "Most visited:",
			output.StyleBold.Render(summary.MostVisited.Domain),
			output.FormatDuration(summary.MostVisited.Seconds),
			summary.MostVisited.Percentage)
	}
	fmt.Printf(" %-18s %s/year  %s\n", "Projected:",
		output.StyleBold.Render(output.FormatHours(summary.Projected.Seconds)),
		output.TrendPercent(summary.Projected.Trend))
	fmt.Println()
	return nil
}
