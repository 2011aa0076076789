package sync

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Git is the optional version-control capability behind a store. A nil
// *Git means the sync directory is not a git working copy; every store
// operation that needs git short-circuits to a no-op in that case.
type Git struct {
	dir string
}

// OpenGit returns the capability for dir, or nil when dir has no .git
// metadata directory. Absence of a repository is a normal condition,
// not an error.
func OpenGit(dir string) *Git {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		return nil
	}
	return &Git{dir: dir}
}

// Commit stages everything under the working copy and commits with the
// ambient committer identity. An empty tree still commits, matching the
// stage-all-then-commit semantics callers rely on after a sync.
func (g *Git) Commit(message string) error {
	if err := g.run("add", "-A"); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	if err := g.run("commit", "--allow-empty", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Fetch fetches a branch from a remote. Fetch only; merging is left to
// the surrounding repository workflow.
func (g *Git) Fetch(remote, branch string) error {
	if err := g.run("fetch", remote, branch); err != nil {
		return fmt.Errorf("failed to fetch %s/%s: %w", remote, branch, err)
	}
	return nil
}

// Head returns the full SHA of the current commit.
func (g *Git) Head() (string, error) {
	out, err := g.output("rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Branch returns the current branch name, or "" when HEAD is detached.
func (g *Git) Branch() (string, error) {
	out, err := g.output("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	branch := strings.TrimSpace(out)
	if branch == "HEAD" {
		return "", nil
	}
	return branch, nil
}

// run executes a git command and returns an error carrying stderr.
func (g *Git) run(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s", err, stderr.String())
	}
	return nil
}

// output executes a git command and returns its stdout.
func (g *Git) output(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: %s", err, stderr.String())
	}
	return stdout.String(), nil
}
