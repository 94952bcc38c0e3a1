package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telespotter/telespotter/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func testState(id string, start time.Time) model.SessionState {
	return model.SessionState{
		ID:          id,
		PhoneNumber: "+14155551234",
		Options:     model.DefaultOptions(),
		Phase:       model.PhaseComplete,
		Progress:    100,
		StartTime:   start,
		Errors:      []string{"google: timeout"},
		Results: model.Results{
			PhoneInfo: model.PhoneInfo{Valid: true, Country: "United States", Formatted: "+1 (415) 555-1234"},
			Patterns: model.Patterns{
				Names: []model.Record{{Kind: model.KindName, Value: "John Smith", Confidence: 85}},
			},
			Summary: model.Summary{TotalNames: 1},
		},
	}
}

func TestSQLiteSaveGetRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveSession(ctx, testState("search_1", start)))

	got, err := s.GetSession(ctx, "search_1")
	require.NoError(t, err)
	assert.Equal(t, "search_1", got.ID)
	assert.Equal(t, "+14155551234", got.PhoneNumber)
	assert.Equal(t, model.PhaseComplete, got.Phase)
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, []string{"google: timeout"}, got.Errors)
	assert.Equal(t, "John Smith", got.Results.Patterns.Names[0].Value)
	assert.Equal(t, 1, got.Results.Summary.TotalNames)
	assert.True(t, got.Options.Google)
}

func TestSQLiteSaveUpserts(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	state := testState("search_1", time.Now().UTC())
	state.Phase = model.PhaseAnalyzing
	state.Progress = 70
	require.NoError(t, s.SaveSession(ctx, state))

	state.Phase = model.PhaseComplete
	state.Progress = 100
	require.NoError(t, s.SaveSession(ctx, state))

	got, err := s.GetSession(ctx, "search_1")
	require.NoError(t, err)
	assert.Equal(t, model.PhaseComplete, got.Phase)
	assert.Equal(t, 100, got.Progress)

	list, err := s.ListSessions(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSQLiteGetNotFound(t *testing.T) {
	s := newTestSQLite(t)

	_, err := s.GetSession(context.Background(), "search_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteListSessionsOrderAndLimit(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"search_a", "search_b", "search_c"} {
		require.NoError(t, s.SaveSession(ctx, testState(id, base.Add(time.Duration(i)*time.Minute))))
	}

	list, err := s.ListSessions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "search_c", list[0].ID)
	assert.Equal(t, "search_b", list[1].ID)
	assert.Equal(t, base.Add(2*time.Minute).Format(time.RFC3339), list[0].StartTime)
}
