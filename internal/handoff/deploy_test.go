package handoff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		input    string
		expected Confidence
	}{
		{"high", ConfidenceHigh},
		{"Low", ConfidenceLow},
		{"medium", ConfidenceMedium},
		{"", ConfidenceMedium},
		{"certain", ConfidenceMedium},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseConfidence(tt.input), "input %q", tt.input)
	}
}

func TestDeployContextBuilders(t *testing.T) {
	c := DeployContext{}.
		Ship("oauth login", "new OAuth flow behind a flag").
		Verify("log in with a test account").
		Rollback("flip the flag off").
		Concern("production", "token cache needs warm-up").
		Depends("redis 7 upgrade", "uses client-side caching", true).
		Breaking("session cookie renamed", "mobile clients").
		Check("run the smoke suite", false).
		Monitor("watch auth error rate for an hour")

	require.Len(t, c.WhatToShip, 1)
	assert.Equal(t, ConfidenceMedium, c.WhatToShip[0].Confidence)
	assert.Len(t, c.VerificationSteps, 1)
	require.NotNil(t, c.RollbackPlan)
	assert.Len(t, c.EnvConcerns, 1)
	require.Len(t, c.Dependencies, 1)
	assert.True(t, c.Dependencies[0].InPlace)
	assert.Len(t, c.BreakingChanges, 1)
	require.Len(t, c.Checklist, 1)
	assert.False(t, c.Checklist[0].Done)
	require.NotNil(t, c.MonitoringNotes)
}

func TestDeployCompileSectionOrder(t *testing.T) {
	c := DeployContext{}.
		Ship("oauth login", "new flow").
		Verify("log in once").
		Rollback("flag off").
		Breaking("cookie renamed", "mobile").
		Concern("production", "cache warm-up").
		Check("smoke suite", true)

	out := c.Compile()

	sections := []string{
		"## Deployment Context",
		"### Ready to Ship",
		"### Verification Steps",
		"### Rollback Plan",
		"### Breaking Changes",
		"### Environment Concerns",
		"### Checklist",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestDeployCompileSuppressesEmptySections(t *testing.T) {
	out := DeployContext{}.Compile()

	assert.Contains(t, out, "## Deployment Context")
	assert.NotContains(t, out, "### Ready to Ship")
	assert.NotContains(t, out, "### Rollback Plan")
	assert.NotContains(t, out, "### Checklist")
}

func TestDeployCompileChecklistMarks(t *testing.T) {
	out := DeployContext{}.
		Check("done already", true).
		Check("still open", false).
		Compile()

	assert.Contains(t, out, "- [x] done already")
	assert.Contains(t, out, "- [ ] still open")
}
