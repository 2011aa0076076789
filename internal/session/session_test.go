package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetsStartTime(t *testing.T) {
	s := New()
	require.NotNil(t, s.StartedAt)
	assert.Nil(t, s.EndedAt)
}

func TestEndSetsEndTime(t *testing.T) {
	s := New().End()
	require.NotNil(t, s.EndedAt)
	assert.False(t, s.EndedAt.Before(*s.StartedAt))
}

func TestReadFileAssignsReadOrder(t *testing.T) {
	s := New().
		ReadFile("main.go").
		ReadFileFor("config.go", "check defaults").
		ReadFile("store.go")

	require.Len(t, s.FilesRead, 3)
	assert.Equal(t, 1, s.FilesRead[0].ReadOrder)
	assert.Equal(t, 2, s.FilesRead[1].ReadOrder)
	assert.Equal(t, 3, s.FilesRead[2].ReadOrder)

	require.NotNil(t, s.FilesRead[1].Purpose)
	assert.Equal(t, "check defaults", *s.FilesRead[1].Purpose)
	assert.Nil(t, s.FilesRead[0].Purpose)
}

func TestBuildersDoNotMutateOriginal(t *testing.T) {
	original := New()
	updated := original.ReadFile("main.go").CreatedFile("new.go")

	assert.Empty(t, original.FilesRead)
	assert.Empty(t, original.FilesCreated)
	assert.Len(t, updated.FilesRead, 1)
	assert.Len(t, updated.FilesCreated, 1)
}

func TestActivityBuilders(t *testing.T) {
	s := New().
		ModifiedFile("store.go", "added archive region").
		CreatedFile("archive.go").
		RanCommand("grep -r pending", true).
		Decided("keep one file per handoff", "survives git merges").
		DeadEnded("sqlite index", "store contract is plain files")

	require.Len(t, s.FilesModified, 1)
	require.NotNil(t, s.FilesModified[0].ChangeSummary)
	assert.Len(t, s.FilesCreated, 1)
	require.Len(t, s.CommandsRun, 1)
	assert.True(t, s.CommandsRun[0].Success)
	assert.Len(t, s.Decisions, 1)
	require.Len(t, s.DeadEnds, 1)
	assert.False(t, s.DeadEnds[0].Revisit)
}

func TestObservedClampsImportance(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{3, 3},
		{5, 5},
		{9, 5},
	}

	for _, tt := range tests {
		s := New().Observed("note", CategoryGeneral, tt.input)
		assert.Equal(t, tt.expected, s.Observations[0].Importance, "input %d", tt.input)
	}
}

func TestGotchaIsHighImportance(t *testing.T) {
	s := New().Gotcha("refresh tokens rotate on use")

	require.Len(t, s.Observations, 1)
	assert.Equal(t, CategoryGotcha, s.Observations[0].Category)
	assert.Equal(t, 4, s.Observations[0].Importance)
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
	}{
		{"pattern", CategoryPattern},
		{"gotcha", CategoryGotcha},
		{"insight", CategoryInsight},
		{"question", CategoryQuestion},
		{"risk", CategoryRisk},
		{"general", CategoryGeneral},
		{"", CategoryGeneral},
		{"misc", CategoryGeneral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseCategory(tt.input), "input %q", tt.input)
	}
}

func TestFilesByReadOrder(t *testing.T) {
	s := State{
		FilesRead: []FileRead{
			{Path: "third.go", ReadOrder: 3},
			{Path: "first.go", ReadOrder: 1},
			{Path: "second.go", ReadOrder: 2},
		},
	}

	ordered := s.FilesByReadOrder()
	require.Len(t, ordered, 3)
	assert.Equal(t, "first.go", ordered[0].Path)
	assert.Equal(t, "second.go", ordered[1].Path)
	assert.Equal(t, "third.go", ordered[2].Path)

	// the original slice is left alone
	assert.Equal(t, "third.go", s.FilesRead[0].Path)
}

func TestImportantObservations(t *testing.T) {
	s := New().
		Observed("trivia", CategoryGeneral, 1).
		Observed("worth knowing", CategoryInsight, 3).
		Observed("critical", CategoryRisk, 5)

	important := s.ImportantObservations()
	require.Len(t, important, 2)
	assert.Equal(t, "worth knowing", important[0].Note)
	assert.Equal(t, "critical", important[1].Note)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected string
	}{
		{"empty session", New(), "Exploratory session."},
		{
			"modified only",
			New().ModifiedFile("a.go", "x").ModifiedFile("b.go", "y"),
			"Modified 2 files.",
		},
		{
			"full activity",
			New().ModifiedFile("a.go", "x").CreatedFile("b.go").
				Decided("d", "w").DeadEnded("e", "r"),
			"Modified 1 files. Created 1 files. Made 1 decisions. 1 dead ends noted.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.Summarize())
		})
	}
}
