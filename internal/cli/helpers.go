// Package cli wires the baton subcommands onto the sync store. Each
// command maps 1:1 onto a store operation; mode subcommands run a full
// load-mutate-save cycle against the WIP slot.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/baton/internal/handoff"
	"github.com/example/baton/internal/sync"
)

// storeFromFlags builds a store over the --sync-dir directory.
func storeFromFlags(cmd *cobra.Command) *sync.Store {
	dir, _ := cmd.Flags().GetString("sync-dir")
	if dir == "" {
		dir = "."
	}
	return sync.NewStore(sync.DefaultConfig(dir))
}

// currentAgent resolves the registered identity, failing with the
// agent-not-registered condition when none is set.
func currentAgent(store *sync.Store) (string, error) {
	agent, err := store.ReadState("current_agent")
	if err != nil {
		return "", err
	}
	if agent == "" {
		return "", fmt.Errorf("%w: set one with 'baton whoami --set <your-name>'", sync.ErrAgentNotRegistered)
	}
	return agent, nil
}

// loadWIP fetches the staged handoff, failing with the no-active-handoff
// condition when the slot is empty.
func loadWIP(store *sync.Store) (handoff.Handoff, error) {
	wip, err := store.LoadWIP()
	if err != nil {
		return handoff.Handoff{}, err
	}
	if wip == nil {
		return handoff.Handoff{}, sync.ErrNoActiveHandoff
	}
	return *wip, nil
}

// finalizeWIP sends the staged handoff to pending and clears the slot.
func finalizeWIP(store *sync.Store) (string, error) {
	wip, err := loadWIP(store)
	if err != nil {
		return "", err
	}
	path, err := store.SendHandoff(wip)
	if err != nil {
		return "", err
	}
	if err := store.ClearWIP(); err != nil {
		return "", err
	}
	return path, nil
}
