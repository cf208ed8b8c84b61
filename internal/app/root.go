// Package app contains the Cobra command tree for webtime.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/webtime/internal/config"
	"github.com/blackwell-systems/webtime/internal/output"
	"github.com/blackwell-systems/webtime/internal/store"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "webtime",
	Short: "Track and analyze website usage, with focus-mode blocking",
	Long: `webtime records website visits, aggregates them into summaries,
rankings, and annual projections, and offers a focus mode that blocks
distracting domains for a timed interval.

Run 'webtime report' for today's headline numbers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("webtime", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  report       Headline usage summary for a period")
		fmt.Println("  top          Top websites by time spent")
		fmt.Println("  chart        Daily usage series")
		fmt.Println("  categories   Time by category")
		fmt.Println("  trends       Period-over-period usage changes")
		fmt.Println("  projections  Annualized usage outlook and savings")
		fmt.Println("  insights     Observations from your usage patterns")
		fmt.Println("  log          Record a website visit")
		fmt.Println("  focus        Start, stop, or inspect a focus session")
		fmt.Println("  block        Manage the focus-mode blocklist")
		fmt.Println("  settings     Show or change settings")
		fmt.Println("  tracking     Turn visit tracking on or off")
		fmt.Println("  serve        Run the JSON HTTP API")
		fmt.Println("  data         Export or clear stored data")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/webtime/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}

// openStore loads config, applies its output preferences, and opens the
// database, seeding the settings row from config on first run. Callers own
// the returned handles and must Close the DB.
func openStore() (*config.Config, *store.DB, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if !cfg.Output.Color {
		output.SetNoColor(true)
	}
	output.SetWidth(cfg.Output.Width)

	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.SeedSettings(cfg.Settings()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("seeding settings: %w", err)
	}
	return cfg, db, nil
}
