package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/webtime/internal/analyzer"
	"github.com/blackwell-systems/webtime/internal/focus"
	"github.com/blackwell-systems/webtime/internal/output"
	"github.com/blackwell-systems/webtime/internal/store"
	"github.com/blackwell-systems/webtime/internal/tracker"
)

var focusDuration int

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Start, stop, and inspect focus sessions",
}

var focusStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Begin a focus session",
	Long: `Record the start of a focus session. While a session is open, domains
on the blocklist are reported as blocked. The session runs until its
duration elapses or it is stopped; a running serve daemon closes it at
expiry, otherwise the next stop or status command settles it.`,
	RunE: runFocusStart,
}

var focusStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "End the active focus session",
	RunE:  runFocusStop,
}

var focusStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active session and recent history",
	RunE:  runFocusStatus,
}

func init() {
	focusStartCmd.Flags().IntVar(&focusDuration, "duration", 0, "Session length in minutes (default from settings)")
	focusCmd.AddCommand(focusStartCmd, focusStopCmd, focusStatusCmd)
	rootCmd.AddCommand(focusCmd)
}

func runFocusStart(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	settings, err := db.GetSettings()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	duration := focusDuration
	if duration == 0 {
		duration = settings.FocusDurationMinutes
	}
	if duration < focus.MinDurationMinutes || duration > focus.MaxDurationMinutes {
		return focus.ErrInvalidDuration
	}

	if err := settleExpiredSession(db, time.Now()); err != nil {
		return err
	}
	if active, err := db.GetActiveFocusSession(); err != nil {
		return fmt.Errorf("checking active session: %w", err)
	} else if active != nil {
		return focus.ErrAlreadyActive
	}

	session := tracker.FocusSession{
		StartTime:       time.Now(),
		DurationMinutes: duration,
	}
	if err := db.InsertFocusSession(&session); err != nil {
		return fmt.Errorf("recording session: %w", err)
	}

	fmt.Printf("Focus session started for %d minutes.\n", duration)
	return nil
}

func runFocusStop(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := settleExpiredSession(db, time.Now()); err != nil {
		return err
	}
	closed, err := db.CloseActiveFocusSession(time.Now(), false)
	if err != nil {
		return fmt.Errorf("closing session: %w", err)
	}
	if !closed {
		fmt.Println("No focus session is active.")
		return nil
	}
	fmt.Println("Focus session stopped.")
	return nil
}

func runFocusStatus(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagNoColor {
		output.SetNoColor(true)
	}

	now := time.Now()
	if err := settleExpiredSession(db, now); err != nil {
		return err
	}

	active, err := db.GetActiveFocusSession()
	if err != nil {
		return fmt.Errorf("checking active session: %w", err)
	}
	sessions, err := db.ListFocusSessions()
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}
	stats := analyzer.AnalyzeFocusSessions(sessions)
	recent := analyzer.RecentFocusSessions(sessions, 5)

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(struct {
			Active *tracker.FocusSession  `json:"active,omitempty"`
			Stats  analyzer.FocusStats    `json:"stats"`
			Recent []tracker.FocusSession `json:"recent"`
		}{active, stats, recent})
	}

	fmt.Println(output.Section("Focus"))
	if active != nil {
		expiry := active.StartTime.Add(time.Duration(active.DurationMinutes) * time.Minute)
		remaining := expiry.Sub(now).Round(time.Second)
		fmt.Printf(" Session active: %s remaining of %d minutes.\n",
			output.StyleBold.Render(remaining.String()), active.DurationMinutes)
	} else {
		fmt.Println(" No session active.")
	}

	if stats.Total > 0 {
		fmt.Printf(" %d sessions, %d completed (%d%%).\n",
			stats.Total, stats.Completed, stats.CompletionRate)
	}
	if len(recent) > 0 {
		table := output.NewTable("Started", "Minutes", "Outcome")
		for _, s := range recent {
			outcome := output.StyleError.Render("interrupted")
			if s.Completed {
				outcome = output.StyleSuccess.Render("completed")
			}
			table.AddRow(s.StartTime.Format("Jan 2 15:04"), fmt.Sprintf("%d", s.DurationMinutes), outcome)
		}
		fmt.Println(table.Render())
	}
	return nil
}

// settleExpiredSession closes a stored session whose scheduled expiry has
// passed, marking it completed as of that expiry. Without the serve daemon
// running there is no timer to do this, so CLI entry points settle on read.
func settleExpiredSession(db *store.DB, now time.Time) error {
	active, err := db.GetActiveFocusSession()
	if err != nil {
		return fmt.Errorf("checking active session: %w", err)
	}
	if active == nil {
		return nil
	}
	expiry := active.StartTime.Add(time.Duration(active.DurationMinutes) * time.Minute)
	if now.Before(expiry) {
		return nil
	}
	if _, err := db.CloseActiveFocusSession(expiry, true); err != nil {
		return fmt.Errorf("settling expired session: %w", err)
	}
	return nil
}
