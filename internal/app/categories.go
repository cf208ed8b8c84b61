package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/webtime/internal/analyzer"
	"github.com/blackwell-systems/webtime/internal/output"
)

var categoriesPeriod string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Time by category",
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().StringVar(&categoriesPeriod, "period", "week", "Period: day, week, month, or year")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	p, ok := analyzer.ParsePeriod(categoriesPeriod)
	if !ok {
		return fmt.Errorf("unknown period %q", categoriesPeriod)
	}

	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagNoColor {
		output.SetNoColor(true)
	}

	visits, err := db.ListVisitsSince(analyzer.PeriodStart(time.Now(), p))
	if err != nil {
		return fmt.Errorf("listing visits: %w", err)
	}

	breakdown := analyzer.CategoryBreakdown(visits)

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(breakdown)
	}

	if len(breakdown) == 0 {
		fmt.Println("No visits recorded for this period.")
		return nil
	}

	// Order by time descending for display.
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if breakdown[names[i]].Seconds != breakdown[names[j]].Seconds {
			return breakdown[names[i]].Seconds > breakdown[names[j]].Seconds
		}
		return names[i] < names[j]
	})

	fmt.Println(output.Section(fmt.Sprintf("Categories (%s)", p)))
	table := output.NewTable("Category", "Time", "Share")
	for _, name := range names {
		share := breakdown[name]
		table.AddRow(name, output.FormatDuration(share.Seconds), output.UsageBar(share.Percentage, 12))
	}
	fmt.Println(table.Render())
	return nil
}
