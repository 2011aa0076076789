package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/baton/internal/handoff"
	"github.com/example/baton/internal/sync"
)

func newTestStore(t *testing.T) *sync.Store {
	t.Helper()
	store := sync.NewStore(sync.DefaultConfig(t.TempDir()))
	require.NoError(t, store.Init())
	return store
}

func TestCurrentAgent(t *testing.T) {
	store := newTestStore(t)

	_, err := currentAgent(store)
	assert.ErrorIs(t, err, sync.ErrAgentNotRegistered)

	require.NoError(t, store.WriteState("current_agent", "alice"))

	agent, err := currentAgent(store)
	require.NoError(t, err)
	assert.Equal(t, "alice", agent)
}

func TestLoadWIPEmptySlot(t *testing.T) {
	store := newTestStore(t)

	_, err := loadWIP(store)
	assert.ErrorIs(t, err, sync.ErrNoActiveHandoff)
}

func TestFinalizeWIP(t *testing.T) {
	store := newTestStore(t)

	h := handoff.New(handoff.DebugMode("flaky suite"), "flaky suite", "alice")
	require.NoError(t, store.SaveWIP(h))

	path, err := finalizeWIP(store)
	require.NoError(t, err)
	assert.FileExists(t, path)

	// the slot is empty once the handoff is in pending
	_, err = loadWIP(store)
	assert.ErrorIs(t, err, sync.ErrNoActiveHandoff)

	received, err := store.ReceiveHandoffs()
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, h.ID, received[0].ID)
}

func TestModeMismatchErrors(t *testing.T) {
	store := newTestStore(t)

	h := handoff.New(handoff.DeployMode(), "ship it", "alice")
	require.NoError(t, store.SaveWIP(h))

	_, _, err := debugWIP(store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deploy mode, not debug")

	_, _, err = planWIP(store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deploy mode, not plan")

	_, ctx, err := deployWIP(store)
	require.NoError(t, err)
	require.NotNil(t, ctx)
}
