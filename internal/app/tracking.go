package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

var trackingCmd = &cobra.Command{
	Use:       "tracking {on|off|status}",
	Short:     "Turn visit tracking on or off",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off", "status"},
	RunE:      runTracking,
}

func init() {
	rootCmd.AddCommand(trackingCmd)
}

func runTracking(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	switch args[0] {
	case "status":
		settings, err := db.GetSettings()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		if settings.TrackingEnabled {
			fmt.Println("Tracking is on.")
		} else {
			fmt.Println("Tracking is off.")
		}
		return nil
	case "on", "off":
		enabled := args[0] == "on"
		patch := tracker.SettingsPatch{TrackingEnabled: &enabled}
		if _, err := db.UpdateSettings(patch); err != nil {
			return err
		}
		fmt.Printf("Tracking turned %s.\n", args[0])
		return nil
	default:
		return fmt.Errorf("unknown argument %q, want on, off, or status", args[0])
	}
}
