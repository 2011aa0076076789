package handoff

import (
	"fmt"
	"strings"
)

// DeployContext captures what is ready to ship, how to verify it, and
// how to back it out.
type DeployContext struct {
	WhatToShip        []ShipItem       `json:"what_to_ship"`
	VerificationSteps []string         `json:"verification_steps"`
	RollbackPlan      *string          `json:"rollback_plan,omitempty"`
	EnvConcerns       []EnvConcern     `json:"env_concerns"`
	Dependencies      []Dependency     `json:"dependencies"`
	BreakingChanges   []BreakingChange `json:"breaking_changes"`
	Checklist         []ChecklistItem  `json:"checklist"`
	MonitoringNotes   *string          `json:"monitoring_notes,omitempty"`
}

// ShipItem is one thing ready to ship.
type ShipItem struct {
	Item        string     `json:"item"`
	Description string     `json:"description"`
	Confidence  Confidence `json:"confidence"`
}

// Confidence is a closed enumeration; unrecognized input parses to Medium.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ParseConfidence never fails; unknown tokens map to Medium.
func ParseConfidence(s string) Confidence {
	switch strings.ToLower(s) {
	case "high":
		return ConfidenceHigh
	case "low":
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}

// EnvConcern is an environment-specific worry, optionally mitigated.
type EnvConcern struct {
	Environment string  `json:"environment"`
	Concern     string  `json:"concern"`
	Mitigation  *string `json:"mitigation,omitempty"`
}

// Dependency is something that must be in place before shipping.
type Dependency struct {
	Name    string `json:"name"`
	Reason  string `json:"reason"`
	InPlace bool   `json:"in_place"`
}

// BreakingChange describes what breaks and for whom.
type BreakingChange struct {
	What      string  `json:"what"`
	Affects   string  `json:"affects"`
	Migration *string `json:"migration,omitempty"`
}

// ChecklistItem is a pre-deployment checklist entry.
type ChecklistItem struct {
	Item string `json:"item"`
	Done bool   `json:"done"`
}

// Ship appends a ship item with medium confidence.
func (c DeployContext) Ship(item, description string) DeployContext {
	c.WhatToShip = append(c.WhatToShip, ShipItem{
		Item:        item,
		Description: description,
		Confidence:  ConfidenceMedium,
	})
	return c
}

// Verify appends a verification step.
func (c DeployContext) Verify(step string) DeployContext {
	c.VerificationSteps = append(c.VerificationSteps, step)
	return c
}

// Rollback sets the rollback plan.
func (c DeployContext) Rollback(plan string) DeployContext {
	c.RollbackPlan = &plan
	return c
}

// Concern appends an environment concern.
func (c DeployContext) Concern(env, concern string) DeployContext {
	c.EnvConcerns = append(c.EnvConcerns, EnvConcern{Environment: env, Concern: concern})
	return c
}

// Depends appends a dependency.
func (c DeployContext) Depends(name, reason string, inPlace bool) DeployContext {
	c.Dependencies = append(c.Dependencies, Dependency{Name: name, Reason: reason, InPlace: inPlace})
	return c
}

// Breaking appends a breaking change.
func (c DeployContext) Breaking(what, affects string) DeployContext {
	c.BreakingChanges = append(c.BreakingChanges, BreakingChange{What: what, Affects: affects})
	return c
}

// Check appends a checklist item.
func (c DeployContext) Check(item string, done bool) DeployContext {
	c.Checklist = append(c.Checklist, ChecklistItem{Item: item, Done: done})
	return c
}

// Monitor sets the post-deployment monitoring notes.
func (c DeployContext) Monitor(notes string) DeployContext {
	c.MonitoringNotes = &notes
	return c
}

// Compile renders the deployment section. Sub-heading order is fixed;
// empty collections suppress their heading.
func (c DeployContext) Compile() string {
	var out strings.Builder

	out.WriteString("## Deployment Context\n\n")

	if len(c.WhatToShip) > 0 {
		out.WriteString("### Ready to Ship\n\n")
		for _, item := range c.WhatToShip {
			fmt.Fprintf(&out, "- **%s** (%s): %s\n", item.Item, item.Confidence, item.Description)
		}
		out.WriteString("\n")
	}

	if len(c.VerificationSteps) > 0 {
		out.WriteString("### Verification Steps\n\n")
		for i, step := range c.VerificationSteps {
			fmt.Fprintf(&out, "%d. %s\n", i+1, step)
		}
		out.WriteString("\n")
	}

	if c.RollbackPlan != nil {
		out.WriteString("### Rollback Plan\n\n")
		out.WriteString(*c.RollbackPlan)
		out.WriteString("\n\n")
	}

	if len(c.BreakingChanges) > 0 {
		out.WriteString("### Breaking Changes\n\n")
		for _, bc := range c.BreakingChanges {
			fmt.Fprintf(&out, "- **%s** affects %s\n", bc.What, bc.Affects)
			if bc.Migration != nil {
				fmt.Fprintf(&out, "  Migration: %s\n", *bc.Migration)
			}
		}
		out.WriteString("\n")
	}

	if len(c.EnvConcerns) > 0 {
		out.WriteString("### Environment Concerns\n\n")
		for _, ec := range c.EnvConcerns {
			fmt.Fprintf(&out, "- **%s**: %s\n", ec.Environment, ec.Concern)
		}
		out.WriteString("\n")
	}

	if len(c.Checklist) > 0 {
		out.WriteString("### Checklist\n\n")
		for _, item := range c.Checklist {
			mark := " "
			if item.Done {
				mark = "x"
			}
			fmt.Fprintf(&out, "- [%s] %s\n", mark, item.Item)
		}
		out.WriteString("\n")
	}

	return out.String()
}
