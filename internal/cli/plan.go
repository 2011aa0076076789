package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/baton/internal/handoff"
	"github.com/example/baton/internal/sync"
)

// planWIP loads the staged handoff and returns its plan context,
// failing when the slot is empty or staged in a different mode.
func planWIP(store *sync.Store) (handoff.Handoff, *handoff.PlanContext, error) {
	wip, err := loadWIP(store)
	if err != nil {
		return handoff.Handoff{}, nil, err
	}
	if wip.Mode.Plan == nil {
		return handoff.Handoff{}, nil, fmt.Errorf("active handoff is %s mode, not plan", wip.Mode.Kind())
	}
	return wip, wip.Mode.Plan, nil
}

// PlanCmd returns the plan command group
func PlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a planning handoff incrementally",
		Long:  `Stage a plan-mode handoff around a goal, then record requirements, decisions, rejected options, and open questions. 'done' sends it to pending.`,
	}

	cmd.AddCommand(planNewCmd(), planRequireCmd(), planDecidedCmd(),
		planRejectedCmd(), planQuestionCmd(), planConstraintCmd(),
		planNextStepCmd(), planPhaseCmd(), planProgressCmd(), planDoneCmd())

	return cmd
}

func planNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <goal>",
		Short: "Start a new plan handoff with a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			creator, err := currentAgent(store)
			if err != nil {
				return err
			}

			h := handoff.New(handoff.PlanMode(args[0]), args[0], creator)
			if err := store.SaveWIP(h); err != nil {
				return err
			}

			fmt.Printf("✓ Started plan handoff: %s\n", args[0])
			fmt.Println("Use 'baton plan require', 'baton plan decided', etc. to add details.")
			return nil
		},
	}
}

func planRequireCmd() *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "require <requirement>",
		Short: "Add a requirement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := planWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Require(args[0], handoff.ParsePriority(priority))
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Added requirement: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "should", "Priority: must, should, could, or wont")

	return cmd
}

func planDecidedCmd() *cobra.Command {
	var why string

	cmd := &cobra.Command{
		Use:   "decided <decision>",
		Short: "Record a decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := planWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Decided(args[0], why)
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Recorded decision: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&why, "why", "w", "", "Rationale for the decision")

	return cmd
}

func planRejectedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rejected <option> <reason>",
		Short: "Record a rejected option",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := planWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Rejected(args[0], args[1])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Recorded rejected option: %s\n", args[0])
			return nil
		},
	}
}

func planQuestionCmd() *cobra.Command {
	var (
		importance string
		blocking   bool
	)

	cmd := &cobra.Command{
		Use:   "question <question>",
		Short: "Add an open question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := planWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Question(args[0], importance, blocking)
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			suffix := ""
			if blocking {
				suffix = " (blocking)"
			}
			fmt.Printf("✓ Added question%s: %s\n", suffix, args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&importance, "importance", "i", "medium", "Why the question matters")
	cmd.Flags().BoolVar(&blocking, "blocking", false, "Mark the question as blocking progress")

	return cmd
}

func planConstraintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constraint <constraint>",
		Short: "Add a constraint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := planWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Constrain(args[0])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Added constraint: %s\n", args[0])
			return nil
		},
	}
}

func planNextStepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-step <step>",
		Short: "Add a suggested next step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := planWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.NextStep(args[0])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Added next step: %s\n", args[0])
			return nil
		},
	}
}

func planPhaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phase <phase>",
		Short: "Set the planning phase",
		Long:  `Phases: discovery, requirements, design, review, ready. Unknown values fall back to discovery.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := planWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.InPhase(handoff.ParsePlanPhase(args[0]))
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Phase set to %s\n", ctx.Phase)
			return nil
		},
	}
}

func planProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <pct>",
		Short: "Set the rough progress estimate (0-100)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := planWIP(store)
			if err != nil {
				return err
			}

			pct, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("progress must be a number: %w", err)
			}

			*ctx = ctx.Progress(pct)
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Progress set to %d%%\n", *ctx.ProgressPct)
			return nil
		},
	}
}

func planDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done",
		Short: "Finalize and send the handoff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			if _, _, err := planWIP(store); err != nil {
				return err
			}

			path, err := finalizeWIP(store)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Plan handoff finalized: %s\n", path)
			return nil
		},
	}
}
