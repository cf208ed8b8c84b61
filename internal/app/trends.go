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
	trendsPeriod string
	trendsLimit  int
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Period-over-period usage changes",
	RunE:  runTrends,
}

func init() {
	trendsCmd.Flags().StringVar(&trendsPeriod, "period", "week", "Period: day, week, month, or year")
	trendsCmd.Flags().IntVar(&trendsLimit, "limit", 10, "Number of domains to show")
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	p, ok := analyzer.ParsePeriod(trendsPeriod)
	if !ok {
		return fmt.Errorf("unknown period %q", trendsPeriod)
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

	trends := analyzer.Trends(visits, trendsLimit, p, time.Now())

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(trends)
	}

	if len(trends) == 0 {
		fmt.Println("No visits recorded for this period.")
		return nil
	}

	fmt.Println(output.Section(fmt.Sprintf("Trends (%s vs previous %s)", p, p)))
	table := output.NewTable("Domain", "Current", "Previous", "Change")
	for _, t := range trends {
		table.AddRow(
			t.Domain,
			output.FormatDuration(t.CurrentSeconds),
			output.FormatDuration(t.PreviousSeconds),
			output.TrendPercent(t.Trend),
		)
	}
	fmt.Println(table.Render())
	return nil
}
