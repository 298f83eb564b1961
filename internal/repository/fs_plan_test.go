package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avezina/cadence/internal/domain"
	"github.com/avezina/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFSStore(t *testing.T) *FSPlanStore {
	t.Helper()
	store, err := NewFSPlanStore(filepath.Join(t.TempDir(), "plans"))
	require.NoError(t, err)
	return store
}

func TestFSPlanStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestFSStore(t)
	ctx := context.Background()

	actions := []domain.Action{
		testutil.NewTestAction(domain.ActionCreateComment, testutil.At(2025, 4, 12, 9, 17, 42)),
		testutil.NewTestAction(domain.ActionLikePost, testutil.At(2025, 4, 12, 11, 3, 8)),
		testutil.NewTestAction(domain.ActionPostPost, testutil.At(2025, 4, 12, 18, 40, 21), testutil.WithExecuted(true)),
	}

	require.NoError(t, store.Save(ctx, "2025-04-12", actions))

	loaded, err := store.Load(ctx, "2025-04-12")
	require.NoError(t, err)
	assert.Equal(t, actions, loaded)
}

func TestFSPlanStore_AbsentContentStaysAbsent(t *testing.T) {
	store := newTestFSStore(t)
	ctx := context.Background()

	like := testutil.NewTestAction(domain.ActionLikePost, testutil.At(2025, 4, 12, 11, 0, 0))
	require.Empty(t, like.Content)
	require.NoError(t, store.Save(ctx, "2025-04-12", []domain.Action{like}))

	// The file itself must not carry a content key for the like.
	data, err := os.ReadFile(filepath.Join(store.dir, "daily_plan_2025-04-12.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"content"`)

	loaded, err := store.Load(ctx, "2025-04-12")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Empty(t, loaded[0].Content)
}

func TestFSPlanStore_FileFormat(t *testing.T) {
	store := newTestFSStore(t)
	ctx := context.Background()

	a := testutil.NewTestAction(domain.ActionCreateComment, testutil.At(2025, 4, 12, 9, 17, 42),
		testutil.WithContent("숲의 아침 🌲 <3"))
	require.NoError(t, store.Save(ctx, "2025-04-12", []domain.Action{a}))

	data, err := os.ReadFile(filepath.Join(store.dir, "daily_plan_2025-04-12.json"))
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, `"time": "2025-04-12 09:17:42"`)
	assert.Contains(t, text, "숲의 아침 🌲 <3", "non-ASCII and HTML characters stay unescaped")
	assert.Contains(t, text, "\n  {", "2-space indentation")
}

func TestFSPlanStore_MissingPlanLoadsEmpty(t *testing.T) {
	store := newTestFSStore(t)
	ctx := context.Background()

	loaded, err := store.Load(ctx, "2030-01-01")
	require.NoError(t, err)
	assert.Empty(t, loaded)

	exists, err := store.Exists(ctx, "2030-01-01")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFSPlanStore_ExistsDistinguishesEmptyPlanFromNoPlan(t *testing.T) {
	store := newTestFSStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "2025-04-12", nil))

	exists, err := store.Exists(ctx, "2025-04-12")
	require.NoError(t, err)
	assert.True(t, exists, "an empty plan file still exists")

	loaded, err := store.Load(ctx, "2025-04-12")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFSPlanStore_MalformedPlanLoadsEmpty(t *testing.T) {
	store := newTestFSStore(t)
	ctx := context.Background()

	path := filepath.Join(store.dir, "daily_plan_2025-04-12.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	loaded, err := store.Load(ctx, "2025-04-12")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFSPlanStore_SaveLeavesNoTempFiles(t *testing.T) {
	store := newTestFSStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		a := testutil.NewTestAction(domain.ActionCreateComment, testutil.At(2025, 4, 12, 9+i, 0, 0))
		require.NoError(t, store.Save(ctx, "2025-04-12", []domain.Action{a}))
	}

	entries, err := os.ReadDir(store.dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Name(), ".tmp-"), "leftover temp file %s", e.Name())
	}
}

func TestFSPlanStore_ListDates(t *testing.T) {
	store := newTestFSStore(t)
	ctx := context.Background()

	for _, date := range []string{"2025-04-14", "2025-04-12", "2025-04-13"} {
		a := testutil.NewTestAction(domain.ActionCreateComment, testutil.At(2025, 4, 12, 10, 0, 0))
		require.NoError(t, store.Save(ctx, date, []domain.Action{a}))
	}
	// Unrelated files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, "notes.txt"), []byte("x"), 0644))

	dates, err := store.ListDates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-04-12", "2025-04-13", "2025-04-14"}, dates)
}

func TestFSPlanStore_Delete(t *testing.T) {
	store := newTestFSStore(t)
	ctx := context.Background()

	a := testutil.NewTestAction(domain.ActionCreateComment, testutil.At(2025, 4, 12, 10, 0, 0))
	require.NoError(t, store.Save(ctx, "2025-04-12", []domain.Action{a}))

	require.NoError(t, store.Delete(ctx, "2025-04-12"))

	exists, err := store.Exists(ctx, "2025-04-12")
	require.NoError(t, err)
	assert.False(t, exists)

	err = store.Delete(ctx, "2025-04-12")
	assert.ErrorIs(t, err, ErrNotFound)
}
