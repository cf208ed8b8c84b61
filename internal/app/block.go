package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/webtime/internal/output"
	"github.com/blackwell-systems/webtime/internal/tracker"
)

var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Manage the focus-mode blocklist",
}

var blockAddCmd = &cobra.Command{
	Use:   "add <domain>",
	Short: "Add a domain to the blocklist",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlockAdd,
}

var blockRemoveCmd = &cobra.Command{
	Use:   "remove <domain>",
	Short: "Remove a domain from the blocklist",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlockRemove,
}

var blockListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show blocked domains",
	RunE:  runBlockList,
}

func init() {
	blockCmd.AddCommand(blockAddCmd, blockRemoveCmd, blockListCmd)
	rootCmd.AddCommand(blockCmd)
}

func runBlockAdd(cmd *cobra.Command, args []string) error {
	domain := tracker.NormalizeDomain(args[0])
	if domain == "" {
		return fmt.Errorf("invalid domain %q", args[0])
	}

	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	blocked, err := db.InsertBlockedWebsite(domain)
	if err != nil {
		return err
	}
	fmt.Printf("Blocked %s.\n", blocked.Domain)
	return nil
}

func runBlockRemove(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	removed, err := db.DeleteBlockedWebsite(args[0])
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%s is not on the blocklist", tracker.NormalizeDomain(args[0]))
	}
	fmt.Printf("Unblocked %s.\n", tracker.NormalizeDomain(args[0]))
	return nil
}

func runBlockList(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if flagNoColor {
		output.SetNoColor(true)
	}

	blocked, err := db.ListBlockedWebsites()
	if err != nil {
		return fmt.Errorf("listing blocklist: %w", err)
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(blocked)
	}

	if len(blocked) == 0 {
		fmt.Println("Blocklist is empty.")
		return nil
	}
	fmt.Println(output.Section("Blocked websites"))
	for _, b := range blocked {
		fmt.Printf(" %s\n", b.Domain)
	}
	return nil
}
