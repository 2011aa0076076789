package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// WhoamiCmd returns the whoami command
func WhoamiCmd() *cobra.Command {
	var set string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show or set your identity",
		Long:  `Identity is a free-form name stored locally; it stamps every handoff you create.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)

			if set != "" {
				if err := store.WriteState("current_agent", set); err != nil {
					return err
				}
				fmt.Printf("✓ Set identity to: %s\n", set)
				return nil
			}

			agent, err := store.ReadState("current_agent")
			if err != nil {
				return err
			}
			if agent == "" {
				fmt.Println("No identity set. Use 'baton whoami --set <your-name>'")
				return nil
			}
			fmt.Printf("Current identity: %s\n", agent)
			return nil
		},
	}

	cmd.Flags().StringVar(&set, "set", "", "Set the current identity")

	return cmd
}
