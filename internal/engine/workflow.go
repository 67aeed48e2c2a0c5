package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/verdant-labs/garden/pkg/types"
)

// Workflow guard and submission errors.
var (
	ErrNoHabit          = errors.New("no habit selected")
	ErrNoPlants         = errors.New("no plant available to receive xp")
	ErrAlreadyCompleted = errors.New("habit already completed today")
	ErrSubmitInFlight   = errors.New("a submission is already in flight")
)

// State is the workflow submission state.
type State int

const (
	StateIdle State = iota
	StateSubmitting
)

// Awarder is the single operation the workflow drives. *Transactor
// implements it.
type Awarder interface {
	Award(ctx context.Context, habitID, plantID string, day types.Day) (types.Outcome, error)
}

// Workflow orchestrates one completion attempt at a time: guard, submit,
// settle, refresh. Re-invocation while a submission is in flight is
// rejected, never queued, and a pending award is never cancelled locally
// once issued.
type Workflow struct {
	awarder Awarder
	refresh func(context.Context) error

	mu    sync.Mutex
	state State
}

// NewWorkflow creates a workflow. refresh is invoked after a settled
// success or already-done outcome and should re-fetch derived views; it may
// be nil.
func NewWorkflow(awarder Awarder, refresh func(context.Context) error) *Workflow {
	return &Workflow{awarder: awarder, refresh: refresh}
}

// State returns the current submission state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// CanSubmit reports whether the guard would admit a submission for the
// habit right now. The UI disabled condition mirrors this exactly.
func (w *Workflow) CanSubmit(habit *types.Habit, plantID string, done TodaySet) bool {
	return w.guard(habit, plantID, done) == nil
}

func (w *Workflow) guard(habit *types.Habit, plantID string, done TodaySet) error {
	if habit == nil {
		return ErrNoHabit
	}
	if !habit.Active {
		return types.ErrHabitInactive
	}
	if plantID == "" {
		return ErrNoPlants
	}
	if done.Has(habit.HabitID) {
		return ErrAlreadyCompleted
	}
	return nil
}

// Submit runs one completion attempt. done is the ledger snapshot for day.
// Outcomes: OutcomeApplied or OutcomeAlreadyApplied with a nil error (both
// settle the day and trigger a refresh), or an empty outcome with the
// failure reason, leaving all derived state untouched and the workflow idle
// for a retry.
func (w *Workflow) Submit(ctx context.Context, habit *types.Habit, plantID string, day types.Day, done TodaySet) (types.Outcome, error) {
	if err := w.guard(habit, plantID, done); err != nil {
		return "", err
	}

	w.mu.Lock()
	if w.state == StateSubmitting {
		w.mu.Unlock()
		return "", ErrSubmitInFlight
	}
	w.state = StateSubmitting
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.state = StateIdle
		w.mu.Unlock()
	}()

	outcome, err := w.awarder.Award(ctx, habit.HabitID, plantID, day)
	if err != nil {
		return "", err
	}

	if w.refresh != nil {
		if err := w.refresh(ctx); err != nil {
			return outcome, fmt.Errorf("refresh after completion: %w", err)
		}
	}
	return outcome, nil
}
