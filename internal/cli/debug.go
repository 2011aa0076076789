package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/baton/internal/handoff"
	"github.com/example/baton/internal/sync"
)

// debugWIP loads the staged handoff and returns its debug context,
// failing when the slot is empty or staged in a different mode.
func debugWIP(store *sync.Store) (handoff.Handoff, *handoff.DebugContext, error) {
	wip, err := loadWIP(store)
	if err != nil {
		return handoff.Handoff{}, nil, err
	}
	if wip.Mode.Debug == nil {
		return handoff.Handoff{}, nil, fmt.Errorf("active handoff is %s mode, not debug", wip.Mode.Kind())
	}
	return wip, wip.Mode.Debug, nil
}

// DebugCmd returns the debug command group
func DebugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug",
		Short: "Build a troubleshooting handoff incrementally",
		Long:  `Stage a debug-mode handoff around a problem statement, then record symptoms, hypotheses, evidence, and attempts as you go. 'done' sends it to pending.`,
	}

	cmd.AddCommand(debugNewCmd(), debugSymptomCmd(), debugHypothesisCmd(),
		debugTriedCmd(), debugEvidenceCmd(), debugSuspectCmd(),
		debugReproCmd(), debugTheoryCmd(), debugTryNextCmd(), debugDoneCmd())

	return cmd
}

func debugNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <problem>",
		Short: "Start a new debug handoff with a problem statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			creator, err := currentAgent(store)
			if err != nil {
				return err
			}

			h := handoff.New(handoff.DebugMode(args[0]), args[0], creator)
			if err := store.SaveWIP(h); err != nil {
				return err
			}

			fmt.Printf("✓ Started debug handoff: %s\n", args[0])
			fmt.Println("Use 'baton debug symptom', 'baton debug tried', etc. to add details.")
			return nil
		},
	}
}

func debugSymptomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symptom <symptom>",
		Short: "Add a symptom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := debugWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Symptom(args[0])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Added symptom: %s\n", args[0])
			return nil
		},
	}
}

func debugHypothesisCmd() *cobra.Command {
	var likelihood string

	cmd := &cobra.Command{
		Use:   "hypothesis <theory>",
		Short: "Add a hypothesis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := debugWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Hypothesize(args[0], handoff.ParseLikelihood(likelihood))
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Added hypothesis: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&likelihood, "likelihood", "l", "medium", "Likelihood: high, medium, low, or eliminated")

	return cmd
}

func debugTriedCmd() *cobra.Command {
	var (
		result  string
		outcome string
	)

	cmd := &cobra.Command{
		Use:   "tried <what>",
		Short: "Record something that was tried",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := debugWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Tried(args[0], result, handoff.ParseAttemptOutcome(outcome))
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Recorded attempt: %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&result, "result", "r", "No result captured", "What happened")
	cmd.Flags().StringVarP(&outcome, "outcome", "o", "no_effect", "Outcome: fixed, helped, no_effect, worse, or inconclusive")

	return cmd
}

func debugEvidenceCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "evidence <content>",
		Short: "Add a piece of evidence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := debugWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.AddEvidence(handoff.ParseEvidenceKind(kind), args[0])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Println("✓ Added evidence.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "observation", "Kind: observation, log, error, stack, metric, user_report, or screenshot")

	return cmd
}

func debugSuspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suspect <path> <reason>",
		Short: "Add a suspected file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := debugWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Suspect(args[0], args[1])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Added suspect file: %s\n", args[0])
			return nil
		},
	}
}

func debugReproCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repro <steps>",
		Short: "Set reproduction steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := debugWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Repro(args[0])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Println("✓ Set reproduction steps.")
			return nil
		},
	}
}

func debugTheoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theory <theory>",
		Short: "Set the current working theory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := debugWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.Theory(args[0])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Println("✓ Set working theory.")
			return nil
		},
	}
}

func debugTryNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "try-next <next>",
		Short: "Set what the next session should try",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			wip, ctx, err := debugWIP(store)
			if err != nil {
				return err
			}

			*ctx = ctx.TryNext(args[0])
			if err := store.SaveWIP(wip); err != nil {
				return err
			}

			fmt.Printf("✓ Set next step: %s\n", args[0])
			return nil
		},
	}
}

func debugDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done",
		Short: "Finalize and send the handoff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)
			if _, _, err := debugWIP(store); err != nil {
				return err
			}

			path, err := finalizeWIP(store)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Debug handoff finalized: %s\n", path)
			return nil
		},
	}
}
