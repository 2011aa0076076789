package handoff

// WarmUpSequence is the bootstrap briefing attached to a handoff: what
// to read first and what the receiving session must know.
type WarmUpSequence struct {
	PriorityFiles   []PriorityFile `json:"priority_files"`
	TLDR            string         `json:"tldr"`
	MustKnow        []string       `json:"must_know"`
	SuggestedStart  *string        `json:"suggested_start,omitempty"`
	EstimatedTokens *int           `json:"estimated_tokens,omitempty"`
}

// PriorityFile is a file to read early, with a rank (1 = highest).
// Ranks are caller-assigned; uniqueness and contiguity are not enforced.
type PriorityFile struct {
	Path   string  `json:"path"`
	Reason string  `json:"reason"`
	Focus  *string `json:"focus,omitempty"`
	Rank   int     `json:"rank"`
}

// NewWarmUp creates a warm-up sequence with a TL;DR.
func NewWarmUp(tldr string) WarmUpSequence {
	return WarmUpSequence{TLDR: tldr}
}

// WithFile appends a priority file.
func (w WarmUpSequence) WithFile(path, reason string, rank int) WarmUpSequence {
	w.PriorityFiles = append(w.PriorityFiles, PriorityFile{Path: path, Reason: reason, Rank: rank})
	return w
}

// KnowThat appends a must-know item.
func (w WarmUpSequence) KnowThat(item string) WarmUpSequence {
	w.MustKnow = append(w.MustKnow, item)
	return w
}

// SuggestStart sets the suggested first action.
func (w WarmUpSequence) SuggestStart(action string) WarmUpSequence {
	w.SuggestedStart = &action
	return w
}
