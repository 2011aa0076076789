package handoff

import (
	"fmt"
	"strings"
)

// DebugContext captures a problem under investigation: symptoms,
// hypotheses, evidence, and what has already been tried.
type DebugContext struct {
	// ProblemStatement is fixed at construction.
	ProblemStatement  string          `json:"problem_statement"`
	Symptoms          []string        `json:"symptoms"`
	Hypotheses        []Hypothesis    `json:"hypotheses"`
	Attempted         []Attempt       `json:"attempted"`
	Evidence          []Evidence      `json:"evidence"`
	SuspectedFiles    []SuspectedFile `json:"suspected_files"`
	ReproductionSteps *string         `json:"reproduction_steps,omitempty"`
	WorkingTheory     *string         `json:"working_theory,omitempty"`
	NextToTry         *string         `json:"next_to_try,omitempty"`
}

// NewDebugContext creates a debug context with a problem statement.
func NewDebugContext(problem string) DebugContext {
	return DebugContext{ProblemStatement: problem}
}

// Hypothesis is a theory with evidence for and against it.
type Hypothesis struct {
	Theory     string     `json:"theory"`
	Support    []string   `json:"support"`
	Against    []string   `json:"against"`
	Likelihood Likelihood `json:"likelihood"`
}

// Likelihood is a closed enumeration; unrecognized input parses to Medium.
type Likelihood string

const (
	LikelihoodHigh       Likelihood = "high"
	LikelihoodMedium     Likelihood = "medium"
	LikelihoodLow        Likelihood = "low"
	LikelihoodEliminated Likelihood = "eliminated"
)

// ParseLikelihood never fails; unknown tokens map to Medium.
func ParseLikelihood(s string) Likelihood {
	switch strings.ToLower(s) {
	case "high":
		return LikelihoodHigh
	case "low":
		return LikelihoodLow
	case "eliminated":
		return LikelihoodEliminated
	default:
		return LikelihoodMedium
	}
}

// Attempt records something that was tried and how it went.
type Attempt struct {
	What    string         `json:"what"`
	Result  string         `json:"result"`
	Outcome AttemptOutcome `json:"outcome"`
}

// AttemptOutcome is a closed enumeration; unrecognized input parses to NoEffect.
type AttemptOutcome string

const (
	OutcomeFixed        AttemptOutcome = "fixed"
	OutcomeHelped       AttemptOutcome = "helped"
	OutcomeNoEffect     AttemptOutcome = "no_effect"
	OutcomeMadeWorse    AttemptOutcome = "made_worse"
	OutcomeInconclusive AttemptOutcome = "inconclusive"
)

// ParseAttemptOutcome never fails; unknown tokens map to NoEffect.
func ParseAttemptOutcome(s string) AttemptOutcome {
	switch strings.ToLower(s) {
	case "fixed":
		return OutcomeFixed
	case "helped":
		return OutcomeHelped
	case "worse", "made_worse":
		return OutcomeMadeWorse
	case "inconclusive":
		return OutcomeInconclusive
	default:
		return OutcomeNoEffect
	}
}

// Evidence is one piece of gathered evidence.
type Evidence struct {
	Kind      EvidenceKind `json:"kind"`
	Content   string       `json:"content"`
	Source    *string      `json:"source,omitempty"`
	Timestamp *string      `json:"timestamp,omitempty"`
}

// EvidenceKind is a closed enumeration; unrecognized input parses to Observation.
type EvidenceKind string

const (
	EvidenceObservation  EvidenceKind = "observation"
	EvidenceLogEntry     EvidenceKind = "log_entry"
	EvidenceErrorMessage EvidenceKind = "error_message"
	EvidenceStackTrace   EvidenceKind = "stack_trace"
	EvidenceMetric       EvidenceKind = "metric"
	EvidenceUserReport   EvidenceKind = "user_report"
	EvidenceScreenshot   EvidenceKind = "screenshot"
)

// ParseEvidenceKind never fails; unknown tokens map to Observation.
func ParseEvidenceKind(s string) EvidenceKind {
	switch strings.ToLower(s) {
	case "log", "log_entry":
		return EvidenceLogEntry
	case "error", "error_message":
		return EvidenceErrorMessage
	case "stack", "stacktrace", "stack_trace":
		return EvidenceStackTrace
	case "metric":
		return EvidenceMetric
	case "user_report":
		return EvidenceUserReport
	case "screenshot":
		return EvidenceScreenshot
	default:
		return EvidenceObservation
	}
}

// SuspectedFile is a file suspected to be involved in the problem.
type SuspectedFile struct {
	Path       string     `json:"path"`
	Reason     string     `json:"reason"`
	Lines      *string    `json:"lines,omitempty"`
	Confidence Likelihood `json:"confidence"`
}

// Symptom appends a symptom.
func (c DebugContext) Symptom(symptom string) DebugContext {
	c.Symptoms = append(c.Symptoms, symptom)
	return c
}

// Hypothesize appends a hypothesis.
func (c DebugContext) Hypothesize(theory string, likelihood Likelihood) DebugContext {
	c.Hypotheses = append(c.Hypotheses, Hypothesis{Theory: theory, Likelihood: likelihood})
	return c
}

// Tried records an attempt.
func (c DebugContext) Tried(what, result string, outcome AttemptOutcome) DebugContext {
	c.Attempted = append(c.Attempted, Attempt{What: what, Result: result, Outcome: outcome})
	return c
}

// AddEvidence appends evidence.
func (c DebugContext) AddEvidence(kind EvidenceKind, content string) DebugContext {
	c.Evidence = append(c.Evidence, Evidence{Kind: kind, Content: content})
	return c
}

// Suspect appends a suspected file with medium confidence.
func (c DebugContext) Suspect(path, reason string) DebugContext {
	c.SuspectedFiles = append(c.SuspectedFiles, SuspectedFile{
		Path:       path,
		Reason:     reason,
		Confidence: LikelihoodMedium,
	})
	return c
}

// Repro sets the reproduction steps.
func (c DebugContext) Repro(steps string) DebugContext {
	c.ReproductionSteps = &steps
	return c
}

// Theory sets the current working theory.
func (c DebugContext) Theory(theory string) DebugContext {
	c.WorkingTheory = &theory
	return c
}

// TryNext sets what the next session should try.
func (c DebugContext) TryNext(next string) DebugContext {
	c.NextToTry = &next
	return c
}

// Compile renders the troubleshooting section. Sub-heading order is
// fixed; empty collections suppress their heading. The problem statement
// is always present.
func (c DebugContext) Compile() string {
	var out strings.Builder

	out.WriteString("## Troubleshooting Context\n\n")

	out.WriteString("### Problem\n\n")
	out.WriteString(c.ProblemStatement)
	out.WriteString("\n\n")

	if len(c.Symptoms) > 0 {
		out.WriteString("### Symptoms\n\n")
		for _, symptom := range c.Symptoms {
			fmt.Fprintf(&out, "- %s\n", symptom)
		}
		out.WriteString("\n")
	}

	if c.ReproductionSteps != nil {
		out.WriteString("### How to Reproduce\n\n")
		out.WriteString(*c.ReproductionSteps)
		out.WriteString("\n\n")
	}

	if c.WorkingTheory != nil {
		out.WriteString("### Current Working Theory\n\n")
		out.WriteString(*c.WorkingTheory)
		out.WriteString("\n\n")
	}

	if len(c.Hypotheses) > 0 {
		out.WriteString("### Hypotheses\n\n")
		for _, h := range c.Hypotheses {
			fmt.Fprintf(&out, "- **%s**: %s\n", h.Likelihood, h.Theory)
			for _, s := range h.Support {
				fmt.Fprintf(&out, "  - Supports: %s\n", s)
			}
			for _, a := range h.Against {
				fmt.Fprintf(&out, "  - Against: %s\n", a)
			}
		}
		out.WriteString("\n")
	}

	if len(c.Attempted) > 0 {
		out.WriteString("### Already Tried\n\n")
		for _, attempt := range c.Attempted {
			fmt.Fprintf(&out, "- **%s** -> %s (%s)\n", attempt.What, attempt.Result, attempt.Outcome)
		}
		out.WriteString("\n")
	}

	if len(c.Evidence) > 0 {
		out.WriteString("### Evidence\n\n")
		for _, e := range c.Evidence {
			fmt.Fprintf(&out, "**%s**", e.Kind)
			if e.Source != nil {
				fmt.Fprintf(&out, " (from %s)", *e.Source)
			}
			out.WriteString(":\n```\n")
			out.WriteString(e.Content)
			out.WriteString("\n```\n\n")
		}
	}

	if len(c.SuspectedFiles) > 0 {
		out.WriteString("### Suspected Files\n\n")
		for _, sf := range c.SuspectedFiles {
			fmt.Fprintf(&out, "- `%s` (%s): %s\n", sf.Path, sf.Confidence, sf.Reason)
			if sf.Lines != nil {
				fmt.Fprintf(&out, "  Lines: %s\n", *sf.Lines)
			}
		}
		out.WriteString("\n")
	}

	if c.NextToTry != nil {
		out.WriteString("### Suggested Next Step\n\n")
		out.WriteString(*c.NextToTry)
		out.WriteString("\n\n")
	}

	return out.String()
}
