package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/baton/internal/cli"
	"github.com/example/baton/internal/version"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "baton",
		Short:   "Baton - async handoffs between work sessions",
		Version: version.String(),
		Long: `Baton passes structured context between work sessions through a shared
directory, optionally synced over git. One session writes a handoff
(deploy, debug, or plan mode); the next receives it as a briefing.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}

	rootCmd.PersistentFlags().StringP("sync-dir", "s", ".", "Sync directory shared between sessions")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.WhoamiCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.HandoffCmd())
	rootCmd.AddCommand(cli.ReceiveCmd())
	rootCmd.AddCommand(cli.SyncCmd())

	// Incremental handoff builders, one per mode
	rootCmd.AddCommand(cli.DeployCmd())
	rootCmd.AddCommand(cli.DebugCmd())
	rootCmd.AddCommand(cli.PlanCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
