package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/webtime/internal/analyzer"
	"github.com/blackwell-systems/webtime/internal/output"
)

var chartDays int

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Daily usage series",
	Long:  `Show time spent per day over the trailing window as a bar chart.`,
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().IntVar(&chartDays, "days", 7, "Number of trailing days to chart")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
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

	series := analyzer.DailyUsage(visits, chartDays, time.Now())

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(series)
	}

	// Scale bars to the busiest day.
	max := 0
	for _, b := range series {
		if b.Minutes > max {
			max = b.Minutes
		}
	}

	fmt.Println(output.Section(fmt.Sprintf("Daily usage (last %d days)", chartDays)))
	for _, b := range series {
		width := 0
		if max > 0 {
			width = b.Minutes * 40 / max
		}
		bar := strings.Repeat("█", width)
		fmt.Printf(" %s  %-40s %s\n",
			output.StyleMuted.Render(b.Date.Format("Mon Jan 02")),
			output.StyleHeader.Render(bar),
			output.FormatDuration(int64(b.Minutes)*60))
	}
	fmt.Println()
	return nil
}
