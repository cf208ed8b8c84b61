package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dataExportOut string
	dataClearYes  bool
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Export or clear stored data",
}

var dataExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all stored data as JSON",
	RunE:  runDataExport,
}

var dataClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all visits, sessions, and blocklist entries",
	Long: `Remove every stored record and reset settings to defaults. This is
irreversible; pass --yes to confirm.`,
	RunE: runDataClear,
}

func init() {
	dataExportCmd.Flags().StringVarP(&dataExportOut, "out", "o", "", "Write to a file instead of stdout")
	dataClearCmd.Flags().BoolVar(&dataClearYes, "yes", false, "Confirm deletion")
	dataCmd.AddCommand(dataExportCmd, dataClearCmd)
	rootCmd.AddCommand(dataCmd)
}

func runDataExport(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	export, err := db.ExportAll()
	if err != nil {
		return fmt.Errorf("exporting data: %w", err)
	}

	out := os.Stdout
	if dataExportOut != "" {
		f, err := os.Create(dataExportOut)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	if dataExportOut != "" {
		fmt.Printf("Exported to %s.\n", dataExportOut)
	}
	return nil
}

func runDataClear(cmd *cobra.Command, args []string) error {
	if !dataClearYes {
		return fmt.Errorf("refusing to delete all data without --yes")
	}

	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ClearAll(); err != nil {
		return fmt.Errorf("clearing data: %w", err)
	}
	fmt.Println("All data cleared; settings reset to defaults.")
	return nil
}
