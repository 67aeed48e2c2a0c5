package engine

import (
	"fmt"

	"github.com/verdant-labs/garden/pkg/types"
)

// FocalPlantKey is the preference-store key holding the focal plant ID.
const FocalPlantKey = "focal_plant"

// PrefStore is the local key/value surface used to persist the focal
// pointer independently of the main store. It must tolerate missing keys
// and values that reference entities which no longer exist.
type PrefStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// FocalSelector resolves and persists the user's focal plant. Consumers
// always call Resolve against a current plant list instead of reading any
// shared mutable pointer.
type FocalSelector struct {
	prefs PrefStore
}

// NewFocalSelector creates a selector backed by the given preference store.
func NewFocalSelector(prefs PrefStore) *FocalSelector {
	return &FocalSelector{prefs: prefs}
}

// Resolve returns the focal plant ID for the given live plants. A stored
// pointer that matches a live plant wins unchanged; it is a user choice,
// not a derived value. Otherwise the highest-XP plant is selected, first
// occurrence winning ties, and persisted so the fallback is stable across
// reloads. With no plants at all, ok is false.
func (s *FocalSelector) Resolve(plants []*types.Plant) (plantID string, ok bool, err error) {
	if stored, found := s.prefs.Get(FocalPlantKey); found && stored != "" {
		for _, p := range plants {
			if p.PlantID == stored {
				return stored, true, nil
			}
		}
		// Stored pointer is dangling; fall through to the fallback rule.
	}

	if len(plants) == 0 {
		return "", false, nil
	}

	best := plants[0]
	for _, p := range plants[1:] {
		if p.XP > best.XP {
			best = p
		}
	}
	if err := s.prefs.Set(FocalPlantKey, best.PlantID); err != nil {
		return "", false, fmt.Errorf("persist focal plant: %w", err)
	}
	return best.PlantID, true, nil
}

// Choose records an explicit user selection.
func (s *FocalSelector) Choose(plantID string) error {
	if plantID == "" {
		return types.ErrInvalidID
	}
	if err := s.prefs.Set(FocalPlantKey, plantID); err != nil {
		return fmt.Errorf("persist focal plant: %w", err)
	}
	return nil
}
