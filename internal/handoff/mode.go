package handoff

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind identifies which context payload a handoff carries.
type Kind string

const (
	KindDeploy Kind = "deploy"
	KindDebug  Kind = "debug"
	KindPlan   Kind = "plan"
)

// ErrInvalidMode is returned when a mode token from the CLI boundary
// does not name one of the three kinds.
var ErrInvalidMode = errors.New("invalid mode")

// Mode is the tagged variant over the three mutually-exclusive context
// payloads. Exactly one of the pointers is non-nil.
type Mode struct {
	Deploy *DeployContext
	Debug  *DebugContext
	Plan   *PlanContext
}

// DeployMode creates a deploy mode with an empty context.
func DeployMode() Mode {
	ctx := DeployContext{}
	return Mode{Deploy: &ctx}
}

// DebugMode creates a debug mode around a problem statement.
func DebugMode(problem string) Mode {
	ctx := NewDebugContext(problem)
	return Mode{Debug: &ctx}
}

// PlanMode creates a plan mode around a goal.
func PlanMode(goal string) Mode {
	ctx := NewPlanContext(goal)
	return Mode{Plan: &ctx}
}

// ParseMode maps a mode token to a Mode. Unlike the field-level enum
// parsers this one is strict: mode selects the payload shape, so an
// unknown token is a domain error rather than a default.
func ParseMode(s, subject string) (Mode, error) {
	switch strings.ToLower(s) {
	case "deploy", "deployment", "ship":
		return DeployMode(), nil
	case "debug", "troubleshoot", "fix":
		if subject == "" {
			subject = "(problem not specified)"
		}
		return DebugMode(subject), nil
	case "plan", "planning", "design":
		if subject == "" {
			subject = "(goal not specified)"
		}
		return PlanMode(subject), nil
	default:
		return Mode{}, fmt.Errorf("%w: %q (use deploy, debug, or plan)", ErrInvalidMode, s)
	}
}

// Kind returns the discriminant for the active payload.
func (m Mode) Kind() Kind {
	switch {
	case m.Deploy != nil:
		return KindDeploy
	case m.Debug != nil:
		return KindDebug
	default:
		return KindPlan
	}
}

func (m Mode) String() string {
	return string(m.Kind())
}

// CompileSection renders the active context's prompt section.
func (m Mode) CompileSection() string {
	switch {
	case m.Deploy != nil:
		return m.Deploy.Compile()
	case m.Debug != nil:
		return m.Debug.Compile()
	case m.Plan != nil:
		return m.Plan.Compile()
	default:
		return ""
	}
}

// modeDoc is the serialized form: the kind discriminant next to the
// payload, so files remain readable and round-trip losslessly.
type modeDoc struct {
	Kind    Kind            `json:"kind"`
	Context json.RawMessage `json:"context"`
}

// MarshalJSON encodes the mode as {"kind": ..., "context": {...}}.
func (m Mode) MarshalJSON() ([]byte, error) {
	var payload any
	switch {
	case m.Deploy != nil:
		payload = m.Deploy
	case m.Debug != nil:
		payload = m.Debug
	case m.Plan != nil:
		payload = m.Plan
	default:
		return nil, errors.New("mode has no context payload")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(modeDoc{Kind: m.Kind(), Context: raw})
}

// UnmarshalJSON decodes the discriminated form written by MarshalJSON.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var doc modeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	switch doc.Kind {
	case KindDeploy:
		var ctx DeployContext
		if err := json.Unmarshal(doc.Context, &ctx); err != nil {
			return err
		}
		*m = Mode{Deploy: &ctx}
	case KindDebug:
		var ctx DebugContext
		if err := json.Unmarshal(doc.Context, &ctx); err != nil {
			return err
		}
		*m = Mode{Debug: &ctx}
	case KindPlan:
		var ctx PlanContext
		if err := json.Unmarshal(doc.Context, &ctx); err != nil {
			return err
		}
		*m = Mode{Plan: &ctx}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, doc.Kind)
	}
	return nil
}
