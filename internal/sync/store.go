package sync

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/baton/internal/handoff"
)

const wipFile = "wip.json"

// Store is the directory-backed handoff store. All operations are
// synchronous and blocking; there are no internal retries or timeouts.
// The pending and archive regions are safe for multiple readers
// concurrent with a single writer because every handoff lives in its
// own uniquely-named file. The WIP slot is single-writer by convention:
// concurrent writers race with last-write-wins semantics.
type Store struct {
	config Config
	git    *Git
}

// NewStore creates a store over the configured directories. Git backing
// is detected by the presence of .git metadata in the sync directory;
// the store never initializes a repository itself.
func NewStore(config Config) *Store {
	return &Store{
		config: config,
		git:    OpenGit(config.SyncDir),
	}
}

// Backed reports whether the store sits in a git working copy.
func (s *Store) Backed() bool {
	return s.git != nil
}

// Init creates the pending, archive, and state regions and drops an
// ignore marker for the local-only state files. Idempotent.
func (s *Store) Init() error {
	for _, dir := range []string{s.config.Pending, s.config.State, s.config.Archive} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	gitignore := filepath.Join(s.config.State, ".gitignore")
	if _, err := os.Stat(gitignore); os.IsNotExist(err) {
		if err := os.WriteFile(gitignore, []byte(wipFile+"\ncurrent_agent.json\n"), 0644); err != nil {
			return fmt.Errorf("failed to write ignore marker: %w", err)
		}
	}

	slog.Debug("initialized sync store", "dir", s.config.SyncDir)
	return nil
}

// SendHandoff writes a finalized handoff into the pending region under
// a chronologically-sortable, collision-resistant name, and commits the
// change when auto-commit is on and the store is backed. Returns the
// written path.
func (s *Store) SendHandoff(h handoff.Handoff) (string, error) {
	filename := fmt.Sprintf("%s_%s.json",
		h.CreatedAt.UTC().Format("20060102_150405"), h.ShortID())
	path := filepath.Join(s.config.Pending, filename)

	data, err := h.ToJSON()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write handoff: %w", err)
	}

	slog.Debug("wrote handoff", "id", h.ID, "path", path)

	if s.config.AutoCommit {
		msg := fmt.Sprintf("baton handoff [%s]: %s", h.Mode.Kind(), h.Summary)
		if err := s.CommitChanges(msg); err != nil {
			return "", err
		}
	}

	return path, nil
}

// ReceiveHandoffs lists every parseable handoff in the pending region,
// newest first by creation time. Files that fail to parse are skipped
// and logged, not fatal: the directory may hold debris from other tools
// or partially-written files. Ordering is stable across calls.
func (s *Store) ReceiveHandoffs() ([]handoff.Handoff, error) {
	entries, err := os.ReadDir(s.config.Pending)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read pending: %w", err)
	}

	var handoffs []handoff.Handoff
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.config.Pending, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		h, err := handoff.FromJSON(data)
		if err != nil {
			slog.Debug("skipping unparseable pending file", "path", path, "error", err)
			continue
		}
		handoffs = append(handoffs, h)
	}

	// ReadDir returns entries in filename order; the stable sort keeps
	// repeated reads identical even across equal timestamps.
	sort.SliceStable(handoffs, func(i, j int) bool {
		return handoffs[i].CreatedAt.After(handoffs[j].CreatedAt)
	})

	return handoffs, nil
}

// HasPendingHandoffs reports whether any handoff file sits in pending.
func (s *Store) HasPendingHandoffs() (bool, error) {
	entries, err := os.ReadDir(s.config.Pending)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read pending: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			return true, nil
		}
	}
	return false, nil
}

// ArchiveHandoff relocates the first pending file whose name contains
// shortID into the archive region with a single rename. When several
// filenames share the substring (duplicate short-ID prefixes), the
// first directory-listing hit wins; which one that is is not defined.
func (s *Store) ArchiveHandoff(shortID string) error {
	entries, err := os.ReadDir(s.config.Pending)
	if err != nil {
		return fmt.Errorf("failed to read pending: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.Contains(entry.Name(), shortID) {
			continue
		}
		from := filepath.Join(s.config.Pending, entry.Name())
		to := filepath.Join(s.config.Archive, entry.Name())
		if err := os.Rename(from, to); err != nil {
			return fmt.Errorf("failed to archive %s: %w", entry.Name(), err)
		}
		slog.Debug("archived handoff", "path", to)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrHandoffNotFound, shortID)
}

// SaveWIP writes the work-in-progress handoff, overwriting any existing
// slot contents. No merge, no conflict detection: last write wins.
func (s *Store) SaveWIP(h handoff.Handoff) error {
	data, err := h.ToJSON()
	if err != nil {
		return err
	}
	path := filepath.Join(s.config.State, wipFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save WIP: %w", err)
	}
	return nil
}

// LoadWIP returns the staged handoff, or nil when the slot is empty.
// An empty slot is not an error; a malformed WIP file is.
func (s *Store) LoadWIP() (*handoff.Handoff, error) {
	path := filepath.Join(s.config.State, wipFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read WIP: %w", err)
	}
	h, err := handoff.FromJSON(data)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ClearWIP empties the slot. Removing an absent slot is not an error.
func (s *Store) ClearWIP() error {
	path := filepath.Join(s.config.State, wipFile)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear WIP: %w", err)
	}
	return nil
}

// ReadState reads a single-value state entry. An absent key reads as
// empty, not an error.
func (s *Store) ReadState(key string) (string, error) {
	path := filepath.Join(s.config.State, key+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read state %s: %w", key, err)
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return "", fmt.Errorf("failed to parse state %s: %w", key, err)
	}
	return value, nil
}

// WriteState writes a single-value state entry.
func (s *Store) WriteState(key, value string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal state %s: %w", key, err)
	}
	path := filepath.Join(s.config.State, key+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state %s: %w", key, err)
	}
	return nil
}

// CommitChanges stages everything under the store root and commits. A
// no-op when the store is not backed by a git working copy; actual git
// failures propagate.
func (s *Store) CommitChanges(message string) error {
	if s.git == nil {
		slog.Debug("no git repository, skipping commit")
		return nil
	}
	if err := s.git.Commit(message); err != nil {
		return err
	}
	slog.Debug("committed", "message", message)
	return nil
}

// Pull fetches the main branch from origin. Fetch only, no merge. A
// no-op when the store is unbacked.
func (s *Store) Pull() error {
	if s.git == nil {
		slog.Debug("no git repository, skipping pull")
		return nil
	}
	return s.git.Fetch("origin", "main")
}

// CurrentCommit returns the HEAD commit SHA, best effort: "" when the
// store is unbacked or the SHA cannot be resolved.
func (s *Store) CurrentCommit() string {
	if s.git == nil {
		return ""
	}
	sha, err := s.git.Head()
	if err != nil {
		return ""
	}
	return sha
}

// CurrentBranch returns the checked-out branch, best effort: "" when
// the store is unbacked or HEAD is detached.
func (s *Store) CurrentBranch() string {
	if s.git == nil {
		return ""
	}
	branch, err := s.git.Branch()
	if err != nil {
		return ""
	}
	return branch
}
