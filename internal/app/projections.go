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
	projectionsPeriod string
	projectionsLimit  int
)

var projectionsCmd = &cobra.Command{
	Use:   "projections",
	Short: "Annualized usage outlook per site",
	Long: `Extrapolate each site's average daily usage over a year, and estimate
the time reclaimed by trimming the heaviest categories.`,
	RunE: runProjections,
}

func init() {
	projectionsCmd.Flags().StringVar(&projectionsPeriod, "period", "week", "Period: day, week, month, or year")
	projectionsCmd.Flags().IntVar(&projectionsLimit, "limit", 5, "Number of sites to project")
	rootCmd.AddCommand(projectionsCmd)
}

func runProjections(cmd *cobra.Command, args []string) error {
	p, ok := analyzer.ParsePeriod(projectionsPeriod)
	if !ok {
		return fmt.Errorf("unknown period %q", projectionsPeriod)
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

	proj := analyzer.ProjectUsage(visits, projectionsLimit, p, time.Now())

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(proj)
	}

	if len(proj.Sites) == 0 {
		fmt.Println("No visits recorded yet.")
		return nil
	}

	fmt.Println(output.Section("Annual projections"))
	table := output.NewTable("Domain", "Category", "Daily", "Per year", "Trend")
	for _, site := range proj.Sites {
		table.AddRow(
			site.Domain,
			site.Category,
			output.FormatDuration(int64(site.DailySeconds)),
			output.FormatHours(site.AnnualSeconds),
			output.TrendPercent(site.Trend),
		)
	}
	fmt.Println(table.Render())

	if proj.Savings.PotentialAnnualSeconds > 0 {
		fmt.Printf(" Cutting %s usage by %d%% would free up %s per year.\n",
			"social and entertainment",
			proj.Savings.Percentage,
			output.StyleBold.Render(output.FormatHours(proj.Savings.PotentialAnnualSeconds)))
	}
	return nil
}
