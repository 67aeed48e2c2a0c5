package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant-labs/garden/pkg/types"
)

// stubAwarder implements Awarder with a canned outcome and call count.
type stubAwarder struct {
	outcome types.Outcome
	err     error
	calls   atomic.Int64

	// When non-nil, Award blocks until release is closed.
	release chan struct{}
	started chan struct{}
}

func (a *stubAwarder) Award(ctx context.Context, habitID, plantID string, day types.Day) (types.Outcome, error) {
	a.calls.Add(1)
	if a.started != nil {
		close(a.started)
	}
	if a.release != nil {
		<-a.release
	}
	return a.outcome, a.err
}

func activeHabit() *types.Habit {
	return &types.Habit{HabitID: "h1", Title: "Drink water", Active: true, XPReward: 5}
}

func TestWorkflowGuard(t *testing.T) {
	day := types.Day("2024-06-10")
	awarder := &stubAwarder{outcome: types.OutcomeApplied}
	w := NewWorkflow(awarder, nil)

	tests := []struct {
		name    string
		habit   *types.Habit
		plantID string
		done    TodaySet
		wantErr error
	}{
		{
			name:    "no habit selected",
			habit:   nil,
			plantID: "p1",
			wantErr: ErrNoHabit,
		},
		{
			name:    "inactive habit",
			habit:   &types.Habit{HabitID: "h1", Active: false},
			plantID: "p1",
			wantErr: types.ErrHabitInactive,
		},
		{
			name:    "no plant",
			habit:   activeHabit(),
			plantID: "",
			wantErr: ErrNoPlants,
		},
		{
			name:    "already completed today",
			habit:   activeHabit(),
			plantID: "p1",
			done:    TodaySet{"h1": struct{}{}},
			wantErr: ErrAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.Submit(context.Background(), tt.habit, tt.plantID, day, tt.done)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, awarder.calls.Load(), "guard failures must not reach the awarder")
			assert.False(t, w.CanSubmit(tt.habit, tt.plantID, tt.done))
			assert.Equal(t, StateIdle, w.State())
		})
	}
}

func TestWorkflowSuccessRefreshesAndReturnsToIdle(t *testing.T) {
	awarder := &stubAwarder{outcome: types.OutcomeApplied}
	refreshes := 0
	w := NewWorkflow(awarder, func(ctx context.Context) error {
		refreshes++
		return nil
	})

	outcome, err := w.Submit(context.Background(), activeHabit(), "p1", types.Day("2024-06-10"), nil)
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeApplied, outcome)
	assert.Equal(t, 1, refreshes)
	assert.Equal(t, StateIdle, w.State())
}

func TestWorkflowAlreadyDoneSettlesLikeSuccess(t *testing.T) {
	awarder := &stubAwarder{outcome: types.OutcomeAlreadyApplied}
	refreshes := 0
	w := NewWorkflow(awarder, func(ctx context.Context) error {
		refreshes++
		return nil
	})

	outcome, err := w.Submit(context.Background(), activeHabit(), "p1", types.Day("2024-06-10"), nil)
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeAlreadyApplied, outcome)
	assert.Equal(t, 1, refreshes, "already-done refreshes exactly like success")
	assert.Equal(t, StateIdle, w.State())
}

func TestWorkflowErrorSkipsRefreshAndAllowsRetry(t *testing.T) {
	transient := errors.New("timeout")
	awarder := &stubAwarder{err: transient}
	refreshes := 0
	w := NewWorkflow(awarder, func(ctx context.Context) error {
		refreshes++
		return nil
	})
	habit := activeHabit()
	day := types.Day("2024-06-10")

	_, err := w.Submit(context.Background(), habit, "p1", day, nil)
	assert.ErrorIs(t, err, transient)
	assert.Zero(t, refreshes, "a failure must not touch derived state")
	assert.Equal(t, StateIdle, w.State())

	// The workflow is idle again; a retry is admitted.
	awarder.err = nil
	awarder.outcome = types.OutcomeApplied
	_, err = w.Submit(context.Background(), habit, "p1", day, nil)
	assert.NoError(t, err)
}

func TestWorkflowRejectsOverlappingSubmission(t *testing.T) {
	awarder := &stubAwarder{
		outcome: types.OutcomeApplied,
		release: make(chan struct{}),
		started: make(chan struct{}),
	}
	w := NewWorkflow(awarder, nil)
	habit := activeHabit()
	day := types.Day("2024-06-10")

	firstDone := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background(), habit, "p1", day, nil)
		firstDone <- err
	}()

	// Wait until the first submission is inside Award.
	select {
	case <-awarder.started:
	case <-time.After(5 * time.Second):
		t.Fatal("first submission never started")
	}
	assert.Equal(t, StateSubmitting, w.State())

	// A second attempt while in flight is rejected, not queued.
	_, err := w.Submit(context.Background(), habit, "p1", day, nil)
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Equal(t, int64(1), awarder.calls.Load(), "only one award call may be in flight")

	close(awarder.release)
	require.NoError(t, <-firstDone)
	assert.Equal(t, StateIdle, w.State())
}

func TestWorkflowRefreshFailureSurfacesWithOutcome(t *testing.T) {
	awarder := &stubAwarder{outcome: types.OutcomeApplied}
	stale := errors.New("reload failed")
	w := NewWorkflow(awarder, func(ctx context.Context) error { return stale })

	outcome, err := w.Submit(context.Background(), activeHabit(), "p1", types.Day("2024-06-10"), nil)
	assert.Equal(t, types.OutcomeApplied, outcome, "the award itself settled")
	assert.ErrorIs(t, err, stale)
}
