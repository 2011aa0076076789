package sync

import "errors"

// Domain conditions with stable messages so tooling and tests can match
// on them. Filesystem, serialization, and git failures are wrapped with
// their cause preserved instead.
var (
	// ErrHandoffNotFound means no pending file matched the given short ID.
	ErrHandoffNotFound = errors.New("handoff not found")

	// ErrNoActiveHandoff means a WIP-dependent action ran with an empty slot.
	ErrNoActiveHandoff = errors.New("no active handoff in progress; start one with 'deploy new', 'debug new', or 'plan new'")

	// ErrAgentNotRegistered means the identity state entry is absent where required.
	ErrAgentNotRegistered = errors.New("agent not registered")
)
