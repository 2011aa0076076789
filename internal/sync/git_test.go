package sync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenGitWithoutRepo(t *testing.T) {
	assert.Nil(t, OpenGit(t.TempDir()))
}

func TestOpenGitDetectsRepo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))

	assert.NotNil(t, OpenGit(dir))
}

func TestStoreDetectsGitBacking(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))

	store := NewStore(DefaultConfig(dir))
	assert.True(t, store.Backed())
}
