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

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generated observations about browsing and focus habits",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
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
	sessions, err := db.ListFocusSessions()
	if err != nil {
		return fmt.Errorf("listing focus sessions: %w", err)
	}

	now := time.Now()
	insights := analyzer.GenerateInsights(visits, sessions, now)
	stats := analyzer.AnalyzeFocusSessions(sessions)

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(struct {
			Insights []string            `json:"insights"`
			Focus    analyzer.FocusStats `json:"focus"`
		}{insights, stats})
	}

	fmt.Println(output.Section("Insights"))
	if len(insights) == 0 {
		fmt.Println("Not enough data yet. Keep tracking for a few days.")
	}
	for _, line := range insights {
		fmt.Printf(" %s %s\n", output.StyleHeader.Render("•"), line)
	}

	if stats.Total > 0 {
		fmt.Println(output.Section("Focus sessions"))
		fmt.Printf(" %-18s %d\n", "Sessions:", stats.Total)
		fmt.Printf(" %-18s %d\n", "Completed:", stats.Completed)
		fmt.Printf(" %-18s %d%%\n", "Completion rate:", stats.CompletionRate)
	}
	return nil
}
