package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/verdant-labs/garden/pkg/progression"
	"github.com/verdant-labs/garden/pkg/types"
)

// DefaultWindow is the rolling activity window in days, inclusive of today.
const DefaultWindow = 7

// Snapshot names reported by SnapshotError.
const (
	snapHabits  = "habits"
	snapPlants  = "plants"
	snapToday   = "completions"
	snapRolling = "rolling-count"
)

// SnapshotError reports which of the aggregator's fetches failed. The
// aggregator yields either a complete coherent Snapshot or one of these;
// never a partial view.
type SnapshotError struct {
	Snapshot string
	Err      error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("load %s snapshot: %v", e.Snapshot, e.Err)
}

func (e *SnapshotError) Unwrap() error { return e.Err }

// Snapshot is a coherent point-in-time view of the garden, combined from
// four independently fetched reads. All derived numbers come from here;
// nothing is incrementally patched after a mutation.
type Snapshot struct {
	Today  types.Day
	Window int

	Habits         []*types.Habit // active habits, newest first
	Plants         []*types.Plant // live plants, newest first
	CompletedToday TodaySet
	RollingCount   int // completions in [today-(window-1), today]
}

// DoneCount returns how many active habits were completed today.
func (s *Snapshot) DoneCount() int {
	n := 0
	for _, h := range s.Habits {
		if s.CompletedToday.Has(h.HabitID) {
			n++
		}
	}
	return n
}

// TotalCount returns the number of active habits.
func (s *Snapshot) TotalCount() int {
	return len(s.Habits)
}

// PlantProgress returns the sub-stage progress for one plant's XP total.
func (s *Snapshot) PlantProgress(p *types.Plant) progression.Progress {
	return progression.WithinStage(p.XP)
}

// Aggregator computes dashboard views from store snapshots.
type Aggregator struct {
	store  types.Store
	owner  string
	window int
}

// NewAggregator creates an Aggregator for one owner scope. A window of 0 or
// less selects DefaultWindow.
func NewAggregator(store types.Store, owner string, window int) *Aggregator {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Aggregator{store: store, owner: owner, window: window}
}

// Load fetches the four snapshots concurrently and combines them once all
// have arrived. The fetches are independent; a failure in any one aborts
// the load with a SnapshotError naming it.
func (a *Aggregator) Load(ctx context.Context, today types.Day) (*Snapshot, error) {
	if a.owner == "" {
		return nil, types.ErrNoOwner
	}
	if err := today.Validate(); err != nil {
		return nil, err
	}

	snap := &Snapshot{Today: today, Window: a.window}
	windowStart := today.AddDays(-(a.window - 1))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		habits, err := a.store.FetchActiveHabits(gctx, a.owner)
		if err != nil {
			return &SnapshotError{Snapshot: snapHabits, Err: err}
		}
		snap.Habits = habits
		return nil
	})

	g.Go(func() error {
		plants, err := a.store.FetchLivePlants(gctx, a.owner)
		if err != nil {
			return &SnapshotError{Snapshot: snapPlants, Err: err}
		}
		snap.Plants = plants
		return nil
	})

	g.Go(func() error {
		records, err := a.store.FetchCompletions(gctx, a.owner, today)
		if err != nil {
			return &SnapshotError{Snapshot: snapToday, Err: err}
		}
		snap.CompletedToday = NewTodaySet(records)
		return nil
	})

	g.Go(func() error {
		count, err := a.store.CountCompletions(gctx, a.owner, windowStart, today)
		if err != nil {
			return &SnapshotError{Snapshot: snapRolling, Err: err}
		}
		snap.RollingCount = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
