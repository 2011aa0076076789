package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show store status",
		Long:  `Display identity, git position, pending handoffs, and any staged work in progress.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)

			agent, err := store.ReadState("current_agent")
			if err != nil {
				return err
			}
			if agent != "" {
				fmt.Printf("Identity: %s\n", agent)
			} else {
				fmt.Println("Identity: (not set)")
			}

			if branch := store.CurrentBranch(); branch != "" {
				fmt.Printf("Branch: %s", branch)
				if commit := store.CurrentCommit(); len(commit) >= 8 {
					fmt.Printf(" (%s)", commit[:8])
				}
				fmt.Println()
			}

			handoffs, err := store.ReceiveHandoffs()
			if err != nil {
				return err
			}
			if len(handoffs) > 0 {
				fmt.Printf("\nPending handoffs: %d\n", len(handoffs))
				for _, h := range handoffs {
					fmt.Printf("  [%s] %s - %s\n",
						color.CyanString(string(h.Mode.Kind())), h.ShortID(), h.Summary)
				}
			} else {
				fmt.Println("\nNo pending handoffs.")
			}

			wip, err := store.LoadWIP()
			if err != nil {
				return err
			}
			if wip != nil {
				fmt.Printf("\nWork in progress: [%s] %s\n",
					color.YellowString(string(wip.Mode.Kind())), wip.Summary)
			}

			return nil
		},
	}
}
