package engine

import (
	"context"

	"github.com/verdant-labs/garden/pkg/types"
)

// fakeStore implements types.Store with overridable behavior per method.
// Methods without an override fail loudly so tests only exercise the calls
// they mean to.
type fakeStore struct {
	fetchActiveHabits func(ctx context.Context, owner string) ([]*types.Habit, error)
	fetchLivePlants   func(ctx context.Context, owner string) ([]*types.Plant, error)
	fetchCompletions  func(ctx context.Context, owner string, day types.Day) ([]*types.Completion, error)
	countCompletions  func(ctx context.Context, owner string, from, to types.Day) (int, error)
	completeHabit     func(ctx context.Context, owner, habitID, plantID string, day types.Day) (types.Outcome, error)
}

var _ types.Store = (*fakeStore)(nil)

func (f *fakeStore) Attach(types.Config) error { return nil }
func (f *fakeStore) Detach() error             { return nil }

func (f *fakeStore) FetchHabits(ctx context.Context, owner string) ([]*types.Habit, error) {
	panic("FetchHabits not faked")
}

func (f *fakeStore) FetchActiveHabits(ctx context.Context, owner string) ([]*types.Habit, error) {
	if f.fetchActiveHabits == nil {
		panic("FetchActiveHabits not faked")
	}
	return f.fetchActiveHabits(ctx, owner)
}

func (f *fakeStore) FetchLivePlants(ctx context.Context, owner string) ([]*types.Plant, error) {
	if f.fetchLivePlants == nil {
		panic("FetchLivePlants not faked")
	}
	return f.fetchLivePlants(ctx, owner)
}

func (f *fakeStore) GetPlant(ctx context.Context, owner, plantID string) (*types.Plant, error) {
	panic("GetPlant not faked")
}

func (f *fakeStore) FetchCompletions(ctx context.Context, owner string, day types.Day) ([]*types.Completion, error) {
	if f.fetchCompletions == nil {
		panic("FetchCompletions not faked")
	}
	return f.fetchCompletions(ctx, owner, day)
}

func (f *fakeStore) CountCompletions(ctx context.Context, owner string, from, to types.Day) (int, error) {
	if f.countCompletions == nil {
		panic("CountCompletions not faked")
	}
	return f.countCompletions(ctx, owner, from, to)
}

func (f *fakeStore) CompleteHabit(ctx context.Context, owner, habitID, plantID string, day types.Day) (types.Outcome, error) {
	if f.completeHabit == nil {
		panic("CompleteHabit not faked")
	}
	return f.completeHabit(ctx, owner, habitID, plantID, day)
}

func (f *fakeStore) InsertHabit(ctx context.Context, owner string, habit *types.Habit) (string, error) {
	panic("InsertHabit not faked")
}

func (f *fakeStore) InsertPlant(ctx context.Context, owner string, plant *types.Plant) (string, error) {
	panic("InsertPlant not faked")
}

func (f *fakeStore) SetHabitActive(ctx context.Context, owner, habitID string, active bool) error {
	panic("SetHabitActive not faked")
}

// fakePrefs is an in-memory PrefStore.
type fakePrefs struct {
	values map[string]string
	setErr error
	sets   int
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{values: make(map[string]string)}
}

func (p *fakePrefs) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

func (p *fakePrefs) Set(key, value string) error {
	if p.setErr != nil {
		return p.setErr
	}
	p.sets++
	p.values[key] = value
	return nil
}
