// Package handoff defines the unit of transfer between two work
// sessions: a mode-specific context (deploy, debug, or plan) wrapped in
// an envelope with provenance, a warm-up sequence, and the session log
// of whoever produced it.
package handoff

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/baton/internal/session"
)

// Handoff is the transferable unit. ID, mode, creator, and creation
// time are fixed at construction; everything else is enrichment. Once
// sent to the pending store a handoff is never mutated.
type Handoff struct {
	ID        uuid.UUID      `json:"id"`
	Mode      Mode           `json:"mode"`
	CreatedBy string         `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	Summary   string         `json:"summary"`
	Session   session.State  `json:"session"`
	WarmUp    WarmUpSequence `json:"warm_up"`
	GitRef    *GitRef        `json:"git_ref,omitempty"`
	Tags      []string       `json:"tags"`
}

// GitRef points the handoff at a git object.
type GitRef struct {
	RefType GitRefType `json:"ref_type"`
	Value   string     `json:"value"`
	Remote  *string    `json:"remote,omitempty"`
}

// GitRefType identifies what a GitRef points at.
type GitRefType string

const (
	RefCommit      GitRefType = "commit"
	RefBranch      GitRefType = "branch"
	RefPullRequest GitRefType = "pull_request"
	RefTag         GitRefType = "tag"
)

// CommitRef references a commit SHA.
func CommitRef(sha string) GitRef {
	return GitRef{RefType: RefCommit, Value: sha}
}

// BranchRef references a branch.
func BranchRef(name string) GitRef {
	return GitRef{RefType: RefBranch, Value: name}
}

// PullRequestRef references a pull request number.
func PullRequestRef(number string) GitRef {
	return GitRef{RefType: RefPullRequest, Value: number}
}

// TagRef references a tag.
func TagRef(name string) GitRef {
	return GitRef{RefType: RefTag, Value: name}
}

// New creates a handoff with a fresh ID and the current UTC time.
func New(mode Mode, summary, createdBy string) Handoff {
	return Handoff{
		ID:        uuid.New(),
		Mode:      mode,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
		Summary:   summary,
	}
}

// ShortID returns the first 8 hex characters of the handoff ID, the
// form used in pending filenames and CLI listings.
func (h Handoff) ShortID() string {
	return h.ID.String()[:8]
}

// WithSession sets the session state.
func (h Handoff) WithSession(s session.State) Handoff {
	h.Session = s
	return h
}

// WithWarmUp sets the warm-up sequence.
func (h Handoff) WithWarmUp(w WarmUpSequence) Handoff {
	h.WarmUp = w
	return h
}

// WithGitRef attaches a git reference.
func (h Handoff) WithGitRef(ref GitRef) Handoff {
	h.GitRef = &ref
	return h
}

// WithTag appends a tag. Tags are not deduplicated.
func (h Handoff) WithTag(tag string) Handoff {
	h.Tags = append(h.Tags, tag)
	return h
}

// CompilePrompt produces the full briefing for the receiving session.
// Section order is fixed; sections with no content are omitted.
func (h Handoff) CompilePrompt() string {
	var out strings.Builder

	fmt.Fprintf(&out, "# Handoff: %s\n\n", h.Summary)
	fmt.Fprintf(&out, "**Mode**: %s\n", h.Mode.Kind())
	fmt.Fprintf(&out, "**From**: %s\n", h.CreatedBy)
	fmt.Fprintf(&out, "**Created**: %s\n\n", h.CreatedAt.Format("2006-01-02 15:04 UTC"))

	if h.WarmUp.TLDR != "" {
		out.WriteString("## TL;DR\n\n")
		out.WriteString(h.WarmUp.TLDR)
		out.WriteString("\n\n")
	}

	out.WriteString(h.Mode.CompileSection())

	if len(h.WarmUp.MustKnow) > 0 {
		out.WriteString("## Must Know\n\n")
		for _, item := range h.WarmUp.MustKnow {
			fmt.Fprintf(&out, "- %s\n", item)
		}
		out.WriteString("\n")
	}

	if len(h.WarmUp.PriorityFiles) > 0 {
		out.WriteString("## Start Here (Priority Files)\n\n")
		for _, pf := range h.WarmUp.PriorityFiles {
			fmt.Fprintf(&out, "%d. `%s` - %s\n", pf.Rank, pf.Path, pf.Reason)
			if pf.Focus != nil {
				fmt.Fprintf(&out, "   Focus: %s\n", *pf.Focus)
			}
		}
		out.WriteString("\n")
	}

	if h.WarmUp.SuggestedStart != nil {
		out.WriteString("## Suggested First Action\n\n")
		out.WriteString(*h.WarmUp.SuggestedStart)
		out.WriteString("\n\n")
	}

	if len(h.Session.FilesRead) > 0 || len(h.Session.FilesModified) > 0 {
		out.WriteString("## Previous Session Activity\n\n")
		if len(h.Session.FilesModified) > 0 {
			out.WriteString("**Modified**:\n")
			for _, f := range h.Session.FilesModified {
				fmt.Fprintf(&out, "- `%s`", f.Path)
				if f.ChangeSummary != nil {
					fmt.Fprintf(&out, " - %s", *f.ChangeSummary)
				}
				out.WriteString("\n")
			}
		}
		out.WriteString("\n")
	}

	if h.GitRef != nil {
		fmt.Fprintf(&out, "**Git %s**: `%s`\n", h.GitRef.RefType, h.GitRef.Value)
	}

	return out.String()
}

// ToJSON serializes the handoff to its canonical pretty-printed form.
func (h Handoff) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal handoff: %w", err)
	}
	return data, nil
}

// FromJSON deserializes a handoff from its canonical form.
func FromJSON(data []byte) (Handoff, error) {
	var h Handoff
	if err := json.Unmarshal(data, &h); err != nil {
		return Handoff{}, fmt.Errorf("failed to parse handoff: %w", err)
	}
	return h, nil
}
