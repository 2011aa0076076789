package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/baton/internal/handoff"
)

// HandoffCmd returns the one-shot handoff command
func HandoffCmd() *cobra.Command {
	var (
		mode          string
		priorityFiles []string
		mustKnow      []string
		suggestStart  string
		commit        string
		branch        string
		pr            string
		tags          string
	)

	cmd := &cobra.Command{
		Use:   "handoff <summary>",
		Short: "Create and send a handoff in one shot",
		Long: `Build a handoff from flags and write it straight to the pending store,
skipping the WIP staging cycle. For incremental construction use the
deploy/debug/plan subcommands instead.

Examples:
  baton handoff "Ship OAuth feature" --mode deploy
  baton handoff "Login 500s after refresh" --mode debug -f src/auth.go -k "Token refresh is async"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary := args[0]
			store := storeFromFlags(cmd)

			creator, err := currentAgent(store)
			if err != nil {
				return err
			}

			m, err := handoff.ParseMode(mode, summary)
			if err != nil {
				return err
			}

			warmUp := handoff.NewWarmUp(summary)
			for i, file := range priorityFiles {
				warmUp = warmUp.WithFile(file, "Priority file", i+1)
			}
			for _, item := range mustKnow {
				warmUp = warmUp.KnowThat(item)
			}
			if suggestStart != "" {
				warmUp = warmUp.SuggestStart(suggestStart)
			}

			h := handoff.New(m, summary, creator).WithWarmUp(warmUp)

			switch {
			case commit != "":
				h = h.WithGitRef(handoff.CommitRef(commit))
			case branch != "":
				h = h.WithGitRef(handoff.BranchRef(branch))
			case pr != "":
				h = h.WithGitRef(handoff.PullRequestRef(pr))
			default:
				if sha := store.CurrentCommit(); len(sha) >= 8 {
					h = h.WithGitRef(handoff.CommitRef(sha[:8]))
				}
			}

			if tags != "" {
				for _, tag := range strings.Split(tags, ",") {
					h = h.WithTag(strings.TrimSpace(tag))
				}
			}

			path, err := store.SendHandoff(h)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Handoff created: %s\n", h.ID)
			fmt.Printf("  Mode: %s\n", h.Mode.Kind())
			fmt.Printf("  Summary: %s\n", h.Summary)
			fmt.Printf("  Written to: %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Handoff mode: deploy, debug, or plan (required)")
	cmd.Flags().StringArrayVarP(&priorityFiles, "file", "f", nil, "Priority file to read first (repeatable)")
	cmd.Flags().StringArrayVarP(&mustKnow, "know", "k", nil, "Must-know item (repeatable)")
	cmd.Flags().StringVar(&suggestStart, "suggest-start", "", "Suggested first action for the receiving session")
	cmd.Flags().StringVar(&commit, "commit", "", "Attach a git commit SHA")
	cmd.Flags().StringVar(&branch, "branch", "", "Attach a git branch")
	cmd.Flags().StringVar(&pr, "pr", "", "Attach a pull request number")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	_ = cmd.MarkFlagRequired("mode")

	return cmd
}
