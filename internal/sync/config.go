// Package sync persists handoffs to a shared directory, usually one
// backed by a git working copy. It owns the three store regions
// (pending, archive, local state), the single WIP staging slot, and the
// optional commit/fetch side effects.
package sync

import "path/filepath"

// StateDirName is the local-only state region under the sync directory.
const StateDirName = ".baton"

// Config describes the store layout and commit behavior. It is built
// once at startup and passed explicitly to NewStore; there is no
// process-wide default.
type Config struct {
	// SyncDir is the store root, usually a git working copy.
	SyncDir string

	// Pending holds finalized handoffs, one file each, shared by all
	// identities.
	Pending string

	// State is local-only: the WIP slot and single-value state entries.
	State string

	// Archive holds consumed handoffs moved out of Pending.
	Archive string

	// AutoCommit commits after SendHandoff when the store is backed.
	AutoCommit bool

	// AutoPush is reserved; the store never pushes on its own.
	AutoPush bool
}

// DefaultConfig derives the standard layout under a sync directory.
func DefaultConfig(syncDir string) Config {
	return Config{
		SyncDir:    syncDir,
		Pending:    filepath.Join(syncDir, "pending"),
		State:      filepath.Join(syncDir, StateDirName),
		Archive:    filepath.Join(syncDir, "archive"),
		AutoCommit: true,
		AutoPush:   false,
	}
}
