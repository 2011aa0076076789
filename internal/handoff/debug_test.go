package handoff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLikelihood(t *testing.T) {
	tests := []struct {
		input    string
		expected Likelihood
	}{
		{"high", LikelihoodHigh},
		{"HIGH", LikelihoodHigh},
		{"low", LikelihoodLow},
		{"eliminated", LikelihoodEliminated},
		{"medium", LikelihoodMedium},
		{"", LikelihoodMedium},
		{"very likely", LikelihoodMedium},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLikelihood(tt.input), "input %q", tt.input)
	}
}

func TestParseAttemptOutcome(t *testing.T) {
	tests := []struct {
		input    string
		expected AttemptOutcome
	}{
		{"fixed", OutcomeFixed},
		{"helped", OutcomeHelped},
		{"worse", OutcomeMadeWorse},
		{"made_worse", OutcomeMadeWorse},
		{"inconclusive", OutcomeInconclusive},
		{"", OutcomeNoEffect},
		{"nothing", OutcomeNoEffect},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseAttemptOutcome(tt.input), "input %q", tt.input)
	}
}

func TestParseEvidenceKind(t *testing.T) {
	tests := []struct {
		input    string
		expected EvidenceKind
	}{
		{"log", EvidenceLogEntry},
		{"log_entry", EvidenceLogEntry},
		{"error", EvidenceErrorMessage},
		{"stack", EvidenceStackTrace},
		{"stacktrace", EvidenceStackTrace},
		{"metric", EvidenceMetric},
		{"user_report", EvidenceUserReport},
		{"screenshot", EvidenceScreenshot},
		{"", EvidenceObservation},
		{"hunch", EvidenceObservation},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseEvidenceKind(tt.input), "input %q", tt.input)
	}
}

func TestDebugContextBuilders(t *testing.T) {
	c := NewDebugContext("login 500s").
		Symptom("only after token refresh").
		Hypothesize("race in refresh handler", LikelihoodHigh).
		Tried("added mutex", "still failing", OutcomeNoEffect).
		AddEvidence(EvidenceLogEntry, "token reused after rotation").
		Suspect("internal/auth/token.go", "owns the refresh path").
		Repro("open two tabs, refresh both").
		Theory("second tab wins the rotation race").
		TryNext("serialize refresh per user")

	assert.Equal(t, "login 500s", c.ProblemStatement)
	assert.Len(t, c.Symptoms, 1)
	require.Len(t, c.Hypotheses, 1)
	assert.Equal(t, LikelihoodHigh, c.Hypotheses[0].Likelihood)
	require.Len(t, c.Attempted, 1)
	assert.Equal(t, OutcomeNoEffect, c.Attempted[0].Outcome)
	require.Len(t, c.Evidence, 1)
	assert.Equal(t, EvidenceLogEntry, c.Evidence[0].Kind)
	require.Len(t, c.SuspectedFiles, 1)
	assert.Equal(t, LikelihoodMedium, c.SuspectedFiles[0].Confidence)
	require.NotNil(t, c.ReproductionSteps)
	require.NotNil(t, c.WorkingTheory)
	require.NotNil(t, c.NextToTry)
}

func TestDebugCompileSectionOrder(t *testing.T) {
	c := NewDebugContext("login 500s").
		Symptom("only after token refresh").
		Repro("open two tabs").
		Theory("rotation race").
		Hypothesize("race in refresh handler", LikelihoodHigh).
		Tried("added mutex", "still failing", OutcomeNoEffect).
		AddEvidence(EvidenceLogEntry, "token reused").
		Suspect("internal/auth/token.go", "owns refresh").
		TryNext("serialize refresh")

	out := c.Compile()

	sections := []string{
		"## Troubleshooting Context",
		"### Problem",
		"### Symptoms",
		"### How to Reproduce",
		"### Current Working Theory",
		"### Hypotheses",
		"### Already Tried",
		"### Evidence",
		"### Suspected Files",
		"### Suggested Next Step",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestDebugCompileSuppressesEmptySections(t *testing.T) {
	out := NewDebugContext("it broke").Compile()

	assert.Contains(t, out, "### Problem")
	assert.Contains(t, out, "it broke")
	assert.NotContains(t, out, "### Symptoms")
	assert.NotContains(t, out, "### Hypotheses")
	assert.NotContains(t, out, "### Already Tried")
	assert.NotContains(t, out, "### Evidence")
}

func TestDebugCompileAttemptFormat(t *testing.T) {
	out := NewDebugContext("p").Tried("restarted the pod", "came back unhealthy", OutcomeMadeWorse).Compile()

	assert.Contains(t, out, "- **restarted the pod** -> came back unhealthy (made_worse)")
}
