package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SyncCmd returns the sync command
func SyncCmd() *cobra.Command {
	var pullOnly bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull remote handoffs and push local ones",
		Long: `Fetch the latest handoffs from the git remote, then commit and push
any local changes. A no-op when the sync directory is not a git repo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)

			if !store.Backed() {
				fmt.Println("Sync directory is not a git repository; nothing to sync.")
				return nil
			}

			if err := store.Pull(); err != nil {
				return fmt.Errorf("failed to pull: %w", err)
			}
			fmt.Println("✓ Pulled latest handoffs.")

			if pullOnly {
				return nil
			}

			if err := store.CommitChanges("baton sync"); err != nil {
				return fmt.Errorf("failed to commit: %w", err)
			}
			fmt.Println("✓ Committed local changes.")

			return nil
		},
	}

	cmd.Flags().BoolVar(&pullOnly, "pull-only", false, "Fetch without committing local changes")

	return cmd
}
