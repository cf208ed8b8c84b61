package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/webtime/internal/store"
	"github.com/blackwell-systems/webtime/internal/tracker"
)

var (
	logURL      string
	logDuration int
	logWhen     string
)

var logCmd = &cobra.Command{
	Use:   "log [domain]",
	Short: "Record a website visit by hand",
	Long: `Insert a visit without a browser extension. Pass a bare domain or use
--url; the domain is normalized and categorized on the way in.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logURL, "url", "", "Full URL to derive the domain from")
	logCmd.Flags().IntVar(&logDuration, "duration", 60, "Visit duration in seconds")
	logCmd.Flags().StringVar(&logWhen, "at", "", "Visit start time (RFC 3339), defaults to duration ago")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	var domain string
	switch {
	case logURL != "":
		domain = tracker.DomainFromURL(logURL)
	case len(args) == 1:
		domain = tracker.NormalizeDomain(args[0])
	}
	if domain == "" {
		return fmt.Errorf("provide a domain argument or --url")
	}
	if logDuration < tracker.MinVisitSeconds {
		fmt.Printf("Discarded: visits under %ds are not recorded.\n", tracker.MinVisitSeconds)
		return nil
	}

	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	settings, err := db.GetSettings()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	if !settings.TrackingEnabled {
		return fmt.Errorf("tracking is disabled; enable it with `webtime tracking on`")
	}

	now := time.Now()
	start := now.Add(-time.Duration(logDuration) * time.Second)
	if logWhen != "" {
		start, err = time.Parse(time.RFC3339, logWhen)
		if err != nil {
			return fmt.Errorf("parsing --at: %w", err)
		}
	}
	end := start.Add(time.Duration(logDuration) * time.Second)

	visit := tracker.Visit{
		URL:             logURL,
		Domain:          domain,
		Category:        tracker.Categorize(domain),
		StartTime:       start,
		EndTime:         &end,
		DurationSeconds: int64(logDuration),
	}
	if err := db.InsertVisit(&visit); err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}

	evictExpiredVisits(db, settings, now)

	fmt.Printf("Logged %s for %ds (%s).\n", visit.Domain, visit.DurationSeconds, visit.Category)
	return nil
}

// evictExpiredVisits opportunistically prunes visits past the auto-delete
// window. Failures are non-fatal.
func evictExpiredVisits(db *store.DB, settings tracker.Settings, now time.Time) {
	if settings.AutoDeleteDays <= 0 {
		return
	}
	cutoff := now.AddDate(0, 0, -settings.AutoDeleteDays)
	if _, err := db.DeleteVisitsBefore(cutoff); err != nil {
		fmt.Printf("warning: pruning old visits: %v\n", err)
	}
}
