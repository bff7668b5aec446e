package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local event database",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("No database found at", dbPath)
			return nil
		}

		if !force {
			fmt.Printf("This deletes all recorded decisions at %s.\nRe-run with --force to confirm.\n", dbPath)
			return nil
		}

		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("remove database: %w", err)
		}
		// WAL sidecar files, if present.
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")

		fmt.Println("Deleted", dbPath)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the database")
}
