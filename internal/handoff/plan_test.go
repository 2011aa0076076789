package handoff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input    string
		expected Priority
	}{
		{"must", PriorityMust},
		{"MUST", PriorityMust},
		{"could", PriorityCould},
		{"wont", PriorityWont},
		{"won't", PriorityWont},
		{"should", PriorityShould},
		{"", PriorityShould},
		{"nice-to-have", PriorityShould},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParsePriority(tt.input), "input %q", tt.input)
	}
}

func TestParsePlanPhase(t *testing.T) {
	tests := []struct {
		input    string
		expected PlanPhase
	}{
		{"requirements", PhaseRequirements},
		{"design", PhaseDesign},
		{"review", PhaseReview},
		{"ready", PhaseReady},
		{"discovery", PhaseDiscovery},
		{"", PhaseDiscovery},
		{"kickoff", PhaseDiscovery},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParsePlanPhase(tt.input), "input %q", tt.input)
	}
}

func TestPlanContextBuilders(t *testing.T) {
	c := NewPlanContext("split the monolith").
		Require("billing extracted first", PriorityMust).
		Decided("strangler pattern", "lets us ship incrementally").
		Rejected("big-bang rewrite", "too risky with current coverage").
		Question("who owns the invoices table?", "blocks schema split", true).
		NextStep("inventory billing endpoints").
		Constrain("no downtime during migration").
		InPhase(PhaseDesign)

	assert.Equal(t, "split the monolith", c.Goal)
	require.Len(t, c.Requirements, 1)
	assert.Equal(t, PriorityMust, c.Requirements[0].Priority)
	require.Len(t, c.Decisions, 1)
	assert.True(t, c.Decisions[0].Reversible)
	require.Len(t, c.RejectedOptions, 1)
	assert.True(t, c.RejectedOptions[0].Reconsiderable)
	require.Len(t, c.OpenQuestions, 1)
	assert.True(t, c.OpenQuestions[0].Blocking)
	assert.Len(t, c.NextSteps, 1)
	assert.Len(t, c.Constraints, 1)
	assert.Equal(t, PhaseDesign, c.Phase)
}

func TestPlanContextStartsInDiscovery(t *testing.T) {
	assert.Equal(t, PhaseDiscovery, NewPlanContext("goal").Phase)
}

func TestProgressClamping(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{-10, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{250, 100},
	}

	for _, tt := range tests {
		c := NewPlanContext("goal").Progress(tt.input)
		require.NotNil(t, c.ProgressPct)
		assert.Equal(t, tt.expected, *c.ProgressPct, "input %d", tt.input)
	}
}

func TestPlanCompileSectionOrder(t *testing.T) {
	c := NewPlanContext("split the monolith").
		Require("billing first", PriorityMust).
		Decided("strangler pattern", "incremental").
		Rejected("rewrite", "too risky").
		Question("table ownership?", "blocks split", false).
		Constrain("no downtime").
		NextStep("inventory endpoints").
		Progress(40)

	out := c.Compile()

	sections := []string{
		"## Planning Context",
		"### Goal",
		"**Phase**: discovery (40% complete)",
		"### Requirements",
		"### Decisions Made",
		"### Options Rejected",
		"### Open Questions",
		"### Constraints",
		"### Suggested Next Steps",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestPlanCompileAlwaysShowsGoalAndPhase(t *testing.T) {
	out := NewPlanContext("just a goal").Compile()

	assert.Contains(t, out, "### Goal")
	assert.Contains(t, out, "just a goal")
	assert.Contains(t, out, "**Phase**: discovery")
	assert.NotContains(t, out, "### Requirements")
	assert.NotContains(t, out, "### Open Questions")
}

func TestPlanCompileMarksBlockingQuestions(t *testing.T) {
	out := NewPlanContext("goal").
		Question("is the LB shared?", "affects rollout", true).
		Compile()

	assert.Contains(t, out, "**[BLOCKING]**")
}
