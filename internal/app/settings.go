package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/webtime/internal/output"
	"github.com/blackwell-systems/webtime/internal/tracker"
)

var (
	setFocusMinutes    int
	setBreakMinutes    int
	setRetentionDays   int
	setAutoDeleteDays  int
	setAutoStartBreaks bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change tracker settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one or more settings",
	Long: `Apply the given flags as a settings update. Only flags you pass
change; everything else keeps its current value. Out-of-range values are
rejected without saving anything.`,
	RunE: runSettingsSet,
}

func init() {
	settingsSetCmd.Flags().IntVar(&setFocusMinutes, "focus-duration", 0, "Focus session length in minutes (1-240)")
	settingsSetCmd.Flags().IntVar(&setBreakMinutes, "break-duration", 0, "Break length in minutes (1-240)")
	settingsSetCmd.Flags().IntVar(&setRetentionDays, "retention-days", 0, "Days of data to keep in reports (1-730)")
	settingsSetCmd.Flags().IntVar(&setAutoDeleteDays, "auto-delete-days", 0, "Days before visits are pruned (1-730)")
	settingsSetCmd.Flags().BoolVar(&setAutoStartBreaks, "auto-start-breaks", false, "Start a break when a session completes")
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagNoColor {
		output.SetNoColor(true)
	}

	settings, err := db.GetSettings()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(settings)
	}

	fmt.Println(output.Section("Settings"))
	fmt.Printf(" %-22s %v\n", "Tracking enabled:", settings.TrackingEnabled)
	fmt.Printf(" %-22s %d min\n", "Focus duration:", settings.FocusDurationMinutes)
	fmt.Printf(" %-22s %d min\n", "Break duration:", settings.BreakDurationMinutes)
	fmt.Printf(" %-22s %v\n", "Auto-start breaks:", settings.AutoStartBreaks)
	fmt.Printf(" %-22s %v\n", "Auto-start sessions:", settings.AutoStartSessions)
	fmt.Printf(" %-22s %d days\n", "Data retention:", settings.DataRetentionDays)
	fmt.Printf(" %-22s %d days\n", "Auto-delete after:", settings.AutoDeleteDays)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	var patch tracker.SettingsPatch
	if cmd.Flags().Changed("focus-duration") {
		patch.FocusDurationMinutes = &setFocusMinutes
	}
	if cmd.Flags().Changed("break-duration") {
		patch.BreakDurationMinutes = &setBreakMinutes
	}
	if cmd.Flags().Changed("retention-days") {
		patch.DataRetentionDays = &setRetentionDays
	}
	if cmd.Flags().Changed("auto-delete-days") {
		patch.AutoDeleteDays = &setAutoDeleteDays
	}
	if cmd.Flags().Changed("auto-start-breaks") {
		patch.AutoStartBreaks = &setAutoStartBreaks
	}

	updated, err := db.UpdateSettings(patch)
	if err != nil {
		return err
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(updated)
	}
	fmt.Println("Settings updated.")
	return nil
}
