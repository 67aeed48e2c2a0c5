package engine

import (
	"context"
	"sync"

	"github.com/verdant-labs/garden/pkg/types"
)

// Transactor performs the atomic award-XP-for-completion operation. The
// store guarantees at-most-once semantics per (habit, day); the transactor
// additionally remembers which pairs it has already seen settle so that a
// retry from the same client resolves locally without a redundant store
// call.
type Transactor struct {
	store types.Store
	owner string

	mu      sync.Mutex
	settled map[settledKey]struct{}
}

type settledKey struct {
	habitID string
	day     types.Day
}

// NewTransactor creates a Transactor for one owner scope.
func NewTransactor(store types.Store, owner string) *Transactor {
	return &Transactor{
		store:   store,
		owner:   owner,
		settled: make(map[settledKey]struct{}),
	}
}

// Award records a completion of habitID on day, crediting plantID. It
// returns OutcomeApplied on a fresh award, OutcomeAlreadyApplied when the
// (habit, day) pair already settled, and an error otherwise. On any error
// nothing has been awarded and no derived state has changed; after
// OutcomeApplied the caller must re-fetch derived views rather than patch
// them.
func (t *Transactor) Award(ctx context.Context, habitID, plantID string, day types.Day) (types.Outcome, error) {
	if t.owner == "" {
		return "", types.ErrNoOwner
	}
	if habitID == "" || plantID == "" {
		return "", types.ErrInvalidID
	}
	if err := day.Validate(); err != nil {
		return "", err
	}

	key := settledKey{habitID: habitID, day: day}

	t.mu.Lock()
	_, known := t.settled[key]
	t.mu.Unlock()
	if known {
		return types.OutcomeAlreadyApplied, nil
	}

	outcome, err := t.store.CompleteHabit(ctx, t.owner, habitID, plantID, day)
	if err != nil {
		return "", err
	}

	t.mu.Lock()
	t.settled[key] = struct{}{}
	t.mu.Unlock()
	return outcome, nil
}
