package types

import (
	"context"
	"errors"
)

// Outcome is the result of a CompleteHabit call. AlreadyApplied is a
// recognized non-error outcome: the day's completion already exists, which
// is the desired end state, and no XP moved.
type Outcome string

const (
	OutcomeApplied        Outcome = "applied"
	OutcomeAlreadyApplied Outcome = "already_applied"
)

// Store lifecycle and operation errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrNoOwner         = errors.New("no owner scope configured")
	ErrInvalidID       = errors.New("id must not be empty")
	ErrNotFound        = errors.New("not found")
	ErrHabitInactive   = errors.New("habit is not active")
)

// Store is the transactional store the engine runs against. Every operation
// is scoped to an owner and fails with ErrNoOwner when the owner is empty.
//
// CompleteHabit is the only mutation of shared progression state and must be
// atomic: either the completion record is created and the plant's XP grows by
// exactly the habit's reward, or neither happens. A repeat call for the same
// (habit, day) resolves to OutcomeAlreadyApplied regardless of which plant
// the repeat names. Callers must treat previously derived views as stale
// after an applied completion and re-fetch rather than patch.
type Store interface {
	// Attach connects the store to the backend described by config.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach,
	// operations return ErrStoreDetached.
	Detach() error

	// FetchHabits returns all habits, newest first, including paused ones.
	FetchHabits(ctx context.Context, owner string) ([]*Habit, error)

	// FetchActiveHabits returns habits eligible for completion, newest first.
	FetchActiveHabits(ctx context.Context, owner string) ([]*Habit, error)

	// FetchLivePlants returns all plants, newest first.
	FetchLivePlants(ctx context.Context, owner string) ([]*Plant, error)

	// GetPlant returns one plant by ID. Returns ErrNotFound if absent.
	GetPlant(ctx context.Context, owner, plantID string) (*Plant, error)

	// FetchCompletions returns the completion records for one calendar day.
	FetchCompletions(ctx context.Context, owner string, day Day) ([]*Completion, error)

	// CountCompletions returns the number of completion records with
	// from <= day <= to.
	CountCompletions(ctx context.Context, owner string, from, to Day) (int, error)

	// CompleteHabit atomically records a completion for (habitID, day) and
	// credits plantID with the habit's XP reward. Returns
	// OutcomeAlreadyApplied when a record for (habitID, day) already exists.
	// Returns ErrNotFound for an unknown habit or plant and ErrHabitInactive
	// for a paused habit.
	CompleteHabit(ctx context.Context, owner, habitID, plantID string, day Day) (Outcome, error)

	// InsertHabit creates a habit and returns its generated ID.
	InsertHabit(ctx context.Context, owner string, habit *Habit) (string, error)

	// InsertPlant creates a plant with xp=0, stage=0 and returns its ID.
	InsertPlant(ctx context.Context, owner string, plant *Plant) (string, error)

	// SetHabitActive pauses or resumes a habit. Pausing is a soft delete:
	// the habit stops appearing in FetchActiveHabits but its completion
	// history is preserved.
	SetHabitActive(ctx context.Context, owner, habitID string, active bool) error
}
