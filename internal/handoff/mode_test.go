package handoff

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"deploy", KindDeploy},
		{"deployment", KindDeploy},
		{"ship", KindDeploy},
		{"DEPLOY", KindDeploy},
		{"debug", KindDebug},
		{"troubleshoot", KindDebug},
		{"fix", KindDebug},
		{"plan", KindPlan},
		{"planning", KindPlan},
		{"design", KindPlan},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMode(tt.input, "subject")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.Kind())
		})
	}
}

func TestParseModeRejectsUnknownTokens(t *testing.T) {
	for _, input := range []string{"", "release", "deplo"} {
		_, err := ParseMode(input, "subject")
		assert.ErrorIs(t, err, ErrInvalidMode, "input %q", input)
	}
}

func TestParseModeDefaultsMissingSubject(t *testing.T) {
	m, err := ParseMode("debug", "")
	require.NoError(t, err)
	assert.Equal(t, "(problem not specified)", m.Debug.ProblemStatement)

	m, err = ParseMode("plan", "")
	require.NoError(t, err)
	assert.Equal(t, "(goal not specified)", m.Plan.Goal)
}

func TestModeJSONRoundTrip(t *testing.T) {
	deploy := DeployMode()
	*deploy.Deploy = deploy.Deploy.Ship("auth service", "OAuth flow")

	debug := DebugMode("login 500s")
	*debug.Debug = debug.Debug.Symptom("stack trace in logs")

	plan := PlanMode("redesign billing")
	*plan.Plan = plan.Plan.Require("idempotent charges", PriorityMust)

	tests := []struct {
		name string
		mode Mode
	}{
		{"deploy", deploy},
		{"debug", debug},
		{"plan", plan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.mode)
			require.NoError(t, err)

			var got Mode
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.mode, got)
		})
	}
}

func TestModeJSONCarriesKindDiscriminant(t *testing.T) {
	data, err := json.Marshal(DebugMode("it broke"))
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.JSONEq(t, `"debug"`, string(doc["kind"]))
	assert.Contains(t, doc, "context")
}

func TestModeUnmarshalRejectsUnknownKind(t *testing.T) {
	var m Mode
	err := json.Unmarshal([]byte(`{"kind":"release","context":{}}`), &m)
	assert.ErrorIs(t, err, ErrInvalidMode)
}
