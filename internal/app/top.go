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

var (
	topLimit  int
	topPeriod string
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Top websites by time spent",
	RunE:  runTop,
}

func init() {
	topCmd.Flags().IntVar(&topLimit, "limit", 10, "Number of domains to show")
	topCmd.Flags().StringVar(&topPeriod, "period", "day", "Period: day, week, month, or year")
	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, args []string) error {
	p, ok := analyzer.ParsePeriod(topPeriod)
	if !ok {
		return fmt.Errorf("unknown period %q", topPeriod)
	}

	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagNoColor {
		output.SetNoColor(true)
	}

	now := time.Now()
	visits, err := db.ListVisitsSince(analyzer.PeriodStart(now, p))
	if err != nil {
		return fmt.Errorf("listing visits: %w", err)
	}

	top := analyzer.TopDomains(visits, topLimit, now)

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(top)
	}

	if len(top) == 0 {
		fmt.Println("No visits recorded for this period.")
		return nil
	}

	fmt.Println(output.Section(fmt.Sprintf("Top websites (%s)", p)))
	table := output.NewTable("Domain", "Time", "Share", "Trend", "Category")
	for _, d := range top {
		table.AddRow(
			d.Domain,
			output.FormatDuration(d.Seconds),
			output.UsageBar(d.Percentage, 12),
			output.TrendPercent(d.Trend),
			output.StyleMuted.Render(d.Category),
		)
	}
	fmt.Println(table.Render())
	return nil
}
