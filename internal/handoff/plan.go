package handoff

import (
	"fmt"
	"strings"
)

// PlanContext captures design-phase knowledge: requirements, decisions,
// what was rejected, and what is still open.
type PlanContext struct {
	// Goal is fixed at construction.
	Goal            string           `json:"goal"`
	Requirements    []Requirement    `json:"requirements"`
	Decisions       []Decision       `json:"decisions"`
	RejectedOptions []RejectedOption `json:"rejected_options"`
	OpenQuestions   []OpenQuestion   `json:"open_questions"`
	NextSteps       []string         `json:"next_steps"`
	Constraints     []Constraint     `json:"constraints"`
	Stakeholders    []string         `json:"stakeholders"`
	Phase           PlanPhase        `json:"phase"`
	ProgressPct     *int             `json:"progress_pct,omitempty"`
}

// NewPlanContext creates a plan context with a goal, in discovery phase.
func NewPlanContext(goal string) PlanContext {
	return PlanContext{Goal: goal, Phase: PhaseDiscovery}
}

// Requirement is one gathered requirement.
type Requirement struct {
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Source      *string  `json:"source,omitempty"`
	Confirmed   bool     `json:"confirmed"`
}

// Priority is a closed enumeration (MoSCoW); unrecognized input parses to Should.
type Priority string

const (
	PriorityMust   Priority = "must"
	PriorityShould Priority = "should"
	PriorityCould  Priority = "could"
	PriorityWont   Priority = "wont"
)

// ParsePriority never fails; unknown tokens map to Should.
func ParsePriority(s string) Priority {
	switch strings.ToLower(s) {
	case "must":
		return PriorityMust
	case "could":
		return PriorityCould
	case "wont", "won't":
		return PriorityWont
	default:
		return PriorityShould
	}
}

// Decision records a decision and its rationale.
type Decision struct {
	Decision   string  `json:"decision"`
	Rationale  string  `json:"rationale"`
	Context    *string `json:"context,omitempty"`
	Reversible bool    `json:"reversible"`
}

// RejectedOption records an option that was considered and dropped.
type RejectedOption struct {
	Option         string `json:"option"`
	Reason         string `json:"reason"`
	Reconsiderable bool   `json:"reconsiderable"`
}

// OpenQuestion is a question still needing an answer.
type OpenQuestion struct {
	Question   string  `json:"question"`
	Importance string  `json:"importance"`
	AskWho     *string `json:"ask_who,omitempty"`
	Blocking   bool    `json:"blocking"`
}

// Constraint is a limitation the plan must respect.
type Constraint struct {
	Constraint string  `json:"constraint"`
	Reason     *string `json:"reason,omitempty"`
	Negotiable bool    `json:"negotiable"`
}

// PlanPhase is a closed enumeration; unrecognized input parses to Discovery.
type PlanPhase string

const (
	PhaseDiscovery    PlanPhase = "discovery"
	PhaseRequirements PlanPhase = "requirements"
	PhaseDesign       PlanPhase = "design"
	PhaseReview       PlanPhase = "review"
	PhaseReady        PlanPhase = "ready"
)

// ParsePlanPhase never fails; unknown tokens map to Discovery.
func ParsePlanPhase(s string) PlanPhase {
	switch strings.ToLower(s) {
	case "requirements":
		return PhaseRequirements
	case "design":
		return PhaseDesign
	case "review":
		return PhaseReview
	case "ready":
		return PhaseReady
	default:
		return PhaseDiscovery
	}
}

// Require appends a requirement.
func (c PlanContext) Require(description string, priority Priority) PlanContext {
	c.Requirements = append(c.Requirements, Requirement{Description: description, Priority: priority})
	return c
}

// Decided records a decision, reversible by default.
func (c PlanContext) Decided(decision, rationale string) PlanContext {
	c.Decisions = append(c.Decisions, Decision{Decision: decision, Rationale: rationale, Reversible: true})
	return c
}

// Rejected records a rejected option, reconsiderable by default.
func (c PlanContext) Rejected(option, reason string) PlanContext {
	c.RejectedOptions = append(c.RejectedOptions, RejectedOption{Option: option, Reason: reason, Reconsiderable: true})
	return c
}

// Question appends an open question.
func (c PlanContext) Question(question, importance string, blocking bool) PlanContext {
	c.OpenQuestions = append(c.OpenQuestions, OpenQuestion{Question: question, Importance: importance, Blocking: blocking})
	return c
}

// NextStep appends a suggested next step.
func (c PlanContext) NextStep(step string) PlanContext {
	c.NextSteps = append(c.NextSteps, step)
	return c
}

// Constrain appends a constraint, non-negotiable by default.
func (c PlanContext) Constrain(constraint string) PlanContext {
	c.Constraints = append(c.Constraints, Constraint{Constraint: constraint})
	return c
}

// InPhase sets the planning phase.
func (c PlanContext) InPhase(phase PlanPhase) PlanContext {
	c.Phase = phase
	return c
}

// Progress sets the rough progress estimate, clamped to [0, 100].
func (c PlanContext) Progress(pct int) PlanContext {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	c.ProgressPct = &pct
	return c
}

// Compile renders the planning section. Sub-heading order is fixed;
// empty collections suppress their heading. Goal and phase are always
// present.
func (c PlanContext) Compile() string {
	var out strings.Builder

	out.WriteString("## Planning Context\n\n")

	out.WriteString("### Goal\n\n")
	out.WriteString(c.Goal)
	out.WriteString("\n\n")

	fmt.Fprintf(&out, "**Phase**: %s", c.Phase)
	if c.ProgressPct != nil {
		fmt.Fprintf(&out, " (%d%% complete)", *c.ProgressPct)
	}
	out.WriteString("\n\n")

	if len(c.Requirements) > 0 {
		out.WriteString("### Requirements\n\n")
		for _, req := range c.Requirements {
			confirmed := ""
			if req.Confirmed {
				confirmed = " (confirmed)"
			}
			fmt.Fprintf(&out, "- **%s**%s: %s\n", req.Priority, confirmed, req.Description)
		}
		out.WriteString("\n")
	}

	if len(c.Decisions) > 0 {
		out.WriteString("### Decisions Made\n\n")
		for _, d := range c.Decisions {
			fmt.Fprintf(&out, "- **%s**\n", d.Decision)
			fmt.Fprintf(&out, "  Rationale: %s\n", d.Rationale)
		}
		out.WriteString("\n")
	}

	if len(c.RejectedOptions) > 0 {
		out.WriteString("### Options Rejected\n\n")
		for _, r := range c.RejectedOptions {
			reconsider := ""
			if r.Reconsiderable {
				reconsider = " (could reconsider)"
			}
			fmt.Fprintf(&out, "- ~~%s~~%s: %s\n", r.Option, reconsider, r.Reason)
		}
		out.WriteString("\n")
	}

	if len(c.OpenQuestions) > 0 {
		out.WriteString("### Open Questions\n\n")
		for _, q := range c.OpenQuestions {
			blocking := ""
			if q.Blocking {
				blocking = " **[BLOCKING]**"
			}
			fmt.Fprintf(&out, "- %s%s\n", q.Question, blocking)
			fmt.Fprintf(&out, "  Why it matters: %s\n", q.Importance)
		}
		out.WriteString("\n")
	}

	if len(c.Constraints) > 0 {
		out.WriteString("### Constraints\n\n")
		for _, con := range c.Constraints {
			fmt.Fprintf(&out, "- %s\n", con.Constraint)
		}
		out.WriteString("\n")
	}

	if len(c.NextSteps) > 0 {
		out.WriteString("### Suggested Next Steps\n\n")
		for i, step := range c.NextSteps {
			fmt.Fprintf(&out, "%d. %s\n", i+1, step)
		}
		out.WriteString("\n")
	}

	return out.String()
}
