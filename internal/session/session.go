// Package session tracks what a work session actually did: files
// touched, commands run, observations, decisions, and dead ends. The
// log is append-only and rides along inside a handoff so the next
// session starts warm.
package session

import (
	"fmt"
	"strings"
	"time"
)

// State is the activity log for one work session. Builder methods take
// value receivers and return the updated value; callers own each step.
type State struct {
	StartedAt     *time.Time     `json:"started_at,omitempty"`
	EndedAt       *time.Time     `json:"ended_at,omitempty"`
	FilesRead     []FileRead     `json:"files_read"`
	FilesModified []FileModified `json:"files_modified"`
	FilesCreated  []string       `json:"files_created"`
	CommandsRun   []CommandRun   `json:"commands_run"`
	Observations  []Observation  `json:"observations"`
	Decisions     []Decision     `json:"decisions"`
	DeadEnds      []DeadEnd      `json:"dead_ends"`
}

// FileRead records a file that was read and why.
type FileRead struct {
	Path      string   `json:"path"`
	Purpose   *string  `json:"purpose,omitempty"`
	Takeaways []string `json:"takeaways"`
	ReadOrder int      `json:"read_order"`
}

// FileModified records a changed file.
type FileModified struct {
	Path          string  `json:"path"`
	ChangeSummary *string `json:"change_summary,omitempty"`
	LinesChanged  *int    `json:"lines_changed,omitempty"`
}

// CommandRun records a command and whether it succeeded.
type CommandRun struct {
	Command       string  `json:"command"`
	Purpose       *string `json:"purpose,omitempty"`
	Success       bool    `json:"success"`
	NotableOutput *string `json:"notable_output,omitempty"`
}

// Observation is a note with a category and an importance from 1 to 5.
type Observation struct {
	Note       string   `json:"note"`
	Category   Category `json:"category"`
	Importance int      `json:"importance"`
}

// Category classifies an observation; unrecognized input parses to General.
type Category string

const (
	CategoryGeneral  Category = "general"
	CategoryPattern  Category = "pattern"
	CategoryGotcha   Category = "gotcha"
	CategoryInsight  Category = "insight"
	CategoryQuestion Category = "question"
	CategoryRisk     Category = "risk"
)

// ParseCategory never fails; unknown tokens map to General.
func ParseCategory(s string) Category {
	switch strings.ToLower(s) {
	case "pattern":
		return CategoryPattern
	case "gotcha":
		return CategoryGotcha
	case "insight":
		return CategoryInsight
	case "question":
		return CategoryQuestion
	case "risk":
		return CategoryRisk
	default:
		return CategoryGeneral
	}
}

// Decision records a decision made during the session.
type Decision struct {
	Decision     string   `json:"decision"`
	Why          string   `json:"why"`
	Alternatives []string `json:"alternatives"`
}

// DeadEnd records an approach that did not work.
type DeadEnd struct {
	Approach string `json:"approach"`
	Reason   string `json:"reason"`
	Revisit  bool   `json:"revisit"`
}

// New starts a session log with the start timestamp set.
func New() State {
	now := time.Now().UTC()
	return State{StartedAt: &now}
}

// ReadFile records a file read; read order is assigned at append time.
func (s State) ReadFile(path string) State {
	s.FilesRead = append(s.FilesRead, FileRead{
		Path:      path,
		ReadOrder: len(s.FilesRead) + 1,
	})
	return s
}

// ReadFileFor records a file read with a purpose.
func (s State) ReadFileFor(path, purpose string) State {
	s.FilesRead = append(s.FilesRead, FileRead{
		Path:      path,
		Purpose:   &purpose,
		ReadOrder: len(s.FilesRead) + 1,
	})
	return s
}

// ModifiedFile records a file modification with a change summary.
func (s State) ModifiedFile(path, summary string) State {
	s.FilesModified = append(s.FilesModified, FileModified{
		Path:          path,
		ChangeSummary: &summary,
	})
	return s
}

// CreatedFile records a newly created file.
func (s State) CreatedFile(path string) State {
	s.FilesCreated = append(s.FilesCreated, path)
	return s
}

// RanCommand records a command run.
func (s State) RanCommand(command string, success bool) State {
	s.CommandsRun = append(s.CommandsRun, CommandRun{Command: command, Success: success})
	return s
}

// Observed records an observation; importance is clamped to [1, 5].
func (s State) Observed(note string, category Category, importance int) State {
	if importance < 1 {
		importance = 1
	}
	if importance > 5 {
		importance = 5
	}
	s.Observations = append(s.Observations, Observation{
		Note:       note,
		Category:   category,
		Importance: importance,
	})
	return s
}

// Gotcha records an importance-4 gotcha observation.
func (s State) Gotcha(note string) State {
	return s.Observed(note, CategoryGotcha, 4)
}

// Decided records a decision with its rationale.
func (s State) Decided(decision, why string) State {
	s.Decisions = append(s.Decisions, Decision{Decision: decision, Why: why})
	return s
}

// DeadEnded records an approach that did not work.
func (s State) DeadEnded(approach, reason string) State {
	s.DeadEnds = append(s.DeadEnds, DeadEnd{Approach: approach, Reason: reason})
	return s
}

// End stamps the session end time. Never called implicitly.
func (s State) End() State {
	now := time.Now().UTC()
	s.EndedAt = &now
	return s
}

// FilesByReadOrder returns the files read sorted by read order.
func (s State) FilesByReadOrder() []FileRead {
	files := make([]FileRead, len(s.FilesRead))
	copy(files, s.FilesRead)
	for i := 1; i < len(files); i++ {
		for j := i; j > 0 && files[j].ReadOrder < files[j-1].ReadOrder; j-- {
			files[j], files[j-1] = files[j-1], files[j]
		}
	}
	return files
}

// ImportantObservations returns observations with importance 3 or higher.
func (s State) ImportantObservations() []Observation {
	var important []Observation
	for _, o := range s.Observations {
		if o.Importance >= 3 {
			important = append(important, o)
		}
	}
	return important
}

// Summarize produces a one-line summary of session activity.
func (s State) Summarize() string {
	var out strings.Builder

	if len(s.FilesModified) > 0 {
		fmt.Fprintf(&out, "Modified %d files. ", len(s.FilesModified))
	}
	if len(s.FilesCreated) > 0 {
		fmt.Fprintf(&out, "Created %d files. ", len(s.FilesCreated))
	}
	if len(s.Decisions) > 0 {
		fmt.Fprintf(&out, "Made %d decisions. ", len(s.Decisions))
	}
	if len(s.DeadEnds) > 0 {
		fmt.Fprintf(&out, "%d dead ends noted. ", len(s.DeadEnds))
	}

	if out.Len() == 0 {
		return "Exploratory session."
	}
	return strings.TrimSpace(out.String())
}
