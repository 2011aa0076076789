package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/baton/internal/handoff"
	"github.com/example/baton/internal/sync"
)

// deployWIP loads the staged handoff and returns its deploy context,
// failing when the slot is empty or staged in a different mode.
func deployWIP(store *sync.Store) (handoff.Handoff, *handoff.DeployContext, error) {
	wip, err := loadWIP(store)
	if err != nil {
		return handoff.Handoff{}, nil, err
	}
	if wip.Mode.Deploy == nil {
		return handoff.Handoff{}, nil, fmt.Errorf("active handoff is %s mode, not deploy", wip.Mode.Kind())
	}
	return wip, wip.Mode.Deploy, nil
}

// DeployCmd returns the deploy command group
func DeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Build a deployment handoff incrementally",
		Long:  `Stage a deploy-mode handoff and grow it one detail at a time. Every subcommand saves the work in progress; 'done' sends it to pending.`,
	}

	cmd.AddCommand(deployNewCmd(), deployShipCmd(), deployVerifyCmd(),
		deployRollbackCmd(), deployEnvConcernCmd(), deployBreakingCmd(),
		deployCheckCmd(), deployMonitorCmd(), deployDoneCmd())

	return cmd
}

func deployNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <summary>",
		Short: "Start a new deploy handoff",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			creator, err := currentAgent(store)
			if err != nil {
				return err
			}

			h := handoff.New(handoff.DeployMode(), args[0], creator)
			if err := store.SaveWIP(h); err != nil {
				return err
			}

			fmt.Printf("✓ Started deploy handoff: %s\n", args[0])
			fmt.Println("Use 'baton deploy ship', 'baton deploy verify', etc. to add details.")
			fmt.Println("Use 'baton deploy done' to finalize.")
			return nil
		},
	}
}

func deployShipCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "ship <item>",
		Short: "Add something ready to ship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := deployWIP(store)
			if err != nil {
				return err
			}

			desc := description
			if desc == "" {
				desc = args[0]
			}
			*ctx = ctx.Ship(args[0], desc)
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Added to ship: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Brief description")

	return cmd
}

func deployVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <step>",
		Short: "Add a verification step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := deployWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Verify(args[0])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Added verification step: %s\n", args[0])
			return nil
		},
	}
}

func deployRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback <plan>",
		Short: "Set the rollback plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := deployWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Rollback(args[0])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Println("✓ Set rollback plan.")
			return nil
		},
	}
}

func deployEnvConcernCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env-concern <env> <concern>",
		Short: "Add an environment concern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := deployWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Concern(args[0], args[1])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Added %s concern: %s\n", args[0], args[1])
			return nil
		},
	}
}

func deployBreakingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breaking <what> <affects>",
		Short: "Add a breaking change warning",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := deployWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Breaking(args[0], args[1])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Added breaking change: %s affects %s\n", args[0], args[1])
			return nil
		},
	}
}

func deployCheckCmd() *cobra.Command {
	var done bool

	cmd := &cobra.Command{
		Use:   "check <item>",
		Short: "Add a pre-deployment checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := deployWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Check(args[0], done)
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Added checklist item: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&done, "done", false, "Mark the item already done")

	return cmd
}

func deployMonitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitor <notes>",
		Short: "Set post-deployment monitoring notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := deployWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Monitor(args[0])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Println("✓ Set monitoring notes.")
			return nil
		},
	}
}

func deployDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done",
		Short: "Finalize and send the handoff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			if _, _, err := deployWIP(store); err != nil {
				return err
			}

			path, err := finalizeWIP(store)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Deploy handoff finalized: %s\n", path)
			return nil
		},
	}
}
