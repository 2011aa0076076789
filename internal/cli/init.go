package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/baton/internal/sync"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Initialize a sync directory",
		Long:  `Create the pending, archive, and local state regions for a handoff store. Safe to run on an already-initialized directory.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			store := sync.NewStore(sync.DefaultConfig(dir))
			if err := store.Init(); err != nil {
				return fmt.Errorf("failed to initialize store: %w", err)
			}

			fmt.Printf("✓ Initialized baton store at %s\n", dir)
			fmt.Println("  pending/  - handoffs waiting to be processed")
			fmt.Println("  archive/  - processed handoffs")
			fmt.Printf("  %s/   - local state (gitignored)\n", sync.StateDirName)
			fmt.Println()
			fmt.Println("Next: set your identity with 'baton whoami --set <your-name>'")

			return nil
		},
	}
}
