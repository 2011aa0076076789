package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/baton/internal/handoff"
)

// ReceiveCmd returns the receive command
func ReceiveCmd() *cobra.Command {
	var (
		showPrompt bool
		modeFilter string
		full       bool
		archive    bool
	)

	cmd := &cobra.Command{
		Use:   "receive",
		Short: "List pending handoffs",
		Long: `Read the pending inbox, newest first. Unparseable files are skipped.

Use --prompt to print each handoff as a ready-to-paste briefing, and
--archive to move shown handoffs into the archive afterward.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storeFromFlags(cmd)

			handoffs, err := store.ReceiveHandoffs()
			if err != nil {
				return err
			}

			if modeFilter != "" {
				var filtered []handoff.Handoff
				for _, h := range handoffs {
					if string(h.Mode.Kind()) == strings.ToLower(modeFilter) {
						filtered = append(filtered, h)
					}
				}
				handoffs = filtered
			}

			if len(handoffs) == 0 {
				fmt.Println("No pending handoffs in inbox.")
				return nil
			}

			fmt.Printf("Found %d handoff(s):\n\n", len(handoffs))

			for _, h := range handoffs {
				if showPrompt {
					fmt.Println(strings.Repeat("═", 63))
					fmt.Println(h.CompilePrompt())
					fmt.Println(strings.Repeat("═", 63))
					fmt.Println()
				} else {
					fmt.Printf("[%s] %s - %s\n",
						color.CyanString(strings.ToUpper(string(h.Mode.Kind()))), h.ShortID(), h.Summary)
					fmt.Printf("  From: %s\n", h.CreatedBy)
					fmt.Printf("  Created: %s\n", h.CreatedAt.Format("2006-01-02 15:04"))

					if h.GitRef != nil {
						fmt.Printf("  Git: %s %s\n", h.GitRef.RefType, h.GitRef.Value)
					}

					if full {
						fmt.Printf("  TL;DR: %s\n", h.WarmUp.TLDR)
						if len(h.WarmUp.MustKnow) > 0 {
							fmt.Println("  Must know:")
							for _, item := range h.WarmUp.MustKnow {
								fmt.Printf("    - %s\n", item)
							}
						}
					}
					fmt.Println()
				}

				if archive {
					if err := store.ArchiveHandoff(h.ShortID()); err != nil {
						return err
					}
					fmt.Println("  (archived)")
				}
			}

			if !showPrompt {
				fmt.Println("Use --prompt to see the full compiled handoff prompt.")
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&showPrompt, "prompt", "p", false, "Print compiled prompts, ready to paste")
	cmd.Flags().StringVarP(&modeFilter, "mode", "m", "", "Filter by mode: deploy, debug, or plan")
	cmd.Flags().BoolVarP(&full, "full", "f", false, "Show TL;DR and must-know details")
	cmd.Flags().BoolVar(&archive, "archive", false, "Archive handoffs after showing them")

	return cmd
}
