package types

import (
	"errors"
	"time"
)

// DefaultSpecies is assigned when a plant is created without a species label.
const DefaultSpecies = "sprout"

// ErrInvalidName is returned when a plant is created without a name.
var ErrInvalidName = errors.New("plant name must not be empty")

// Plant is a progression target. XP only ever increases, and only through
// Store.CompleteHabit. Stage is derived from XP (see pkg/progression); the
// store keeps a redundant copy for external readers but hydration always
// recomputes it, so a stale stored stage is never observable here.
type Plant struct {
	PlantID   string    // UUID v7, generated on creation.
	Name      string    // Human-readable name (required, non-empty).
	Species   string    // Category label, e.g. "sprout", "fern".
	XP        int       // Accumulated XP, monotonically non-decreasing.
	Stage     int       // Derived growth stage, floor(XP/25).
	CreatedAt time.Time // Timestamp of creation.
}

// Validate checks that the plant is well-formed for insertion.
func (p *Plant) Validate() error {
	if p.Name == "" {
		return ErrInvalidName
	}
	return nil
}
