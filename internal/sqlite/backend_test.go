package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant-labs/garden/pkg/types"
)

const testOwner = "owner-1"

// newTestBackend returns an attached backend over a temp directory.
func newTestBackend(t *testing.T) *Backend {
	t.Helper()

	b := NewBackend()
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
		Owner:   testOwner,
	}
	require.NoError(t, b.Attach(cfg))
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

func TestBackendLifecycle(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	b := NewBackend()
	require.NoError(t, b.Attach(cfg))

	t.Run("double attach rejected", func(t *testing.T) {
		assert.ErrorIs(t, b.Attach(cfg), types.ErrAlreadyAttached)
	})

	t.Run("detach is idempotent", func(t *testing.T) {
		assert.NoError(t, b.Detach())
		assert.NoError(t, b.Detach())
	})

	t.Run("operations after detach fail", func(t *testing.T) {
		_, err := b.FetchActiveHabits(context.Background(), testOwner)
		assert.ErrorIs(t, err, types.ErrStoreDetached)
	})
}

func TestBackendAttachValidatesConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  types.Config
		wantErr error
	}{
		{
			name:    "empty backend",
			config:  types.Config{DataDir: "x"},
			wantErr: types.ErrBackendEmpty,
		},
		{
			name:    "unknown backend",
			config:  types.Config{Backend: "postgres", DataDir: "x"},
			wantErr: types.ErrBackendUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBackend()
			assert.ErrorIs(t, b.Attach(tt.config), tt.wantErr)
		})
	}
}

func TestBackendDataSurvivesReattach(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}
	ctx := context.Background()

	b := NewBackend()
	require.NoError(t, b.Attach(cfg))

	id, err := b.InsertHabit(ctx, testOwner, &types.Habit{
		Title: "Drink water", Frequency: types.FrequencyDaily, XPReward: 5,
	})
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	// A fresh backend over the same directory sees the habit.
	b2 := NewBackend()
	require.NoError(t, b2.Attach(cfg))
	defer b2.Detach()

	habits, err := b2.FetchActiveHabits(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, id, habits[0].HabitID)
	assert.Equal(t, "Drink water", habits[0].Title)
}

func TestBackendRequiresOwnerScope(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	_, err := b.FetchActiveHabits(ctx, "")
	assert.ErrorIs(t, err, types.ErrNoOwner)

	_, err = b.FetchLivePlants(ctx, "")
	assert.ErrorIs(t, err, types.ErrNoOwner)

	_, err = b.InsertHabit(ctx, "", &types.Habit{Title: "x", Frequency: types.FrequencyDaily})
	assert.ErrorIs(t, err, types.ErrNoOwner)

	_, err = b.CompleteHabit(ctx, "", "h", "p", types.Day("2024-06-10"))
	assert.ErrorIs(t, err, types.ErrNoOwner)

	_, err = b.CountCompletions(ctx, "", types.Day("2024-06-04"), types.Day("2024-06-10"))
	assert.ErrorIs(t, err, types.ErrNoOwner)
}

func TestOwnerScopesArePartitioned(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	_, err := b.InsertHabit(ctx, "alice", &types.Habit{
		Title: "Journal", Frequency: types.FrequencyDaily, XPReward: 5,
	})
	require.NoError(t, err)

	habits, err := b.FetchActiveHabits(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, habits, "one owner's habits must not leak into another scope")
}
