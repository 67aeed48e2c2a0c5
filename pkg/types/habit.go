package types

import (
	"errors"
	"time"
)

// Habit frequencies. The frequency is a display tag; completion uniqueness
// is always per calendar day.
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// MaxXPReward bounds the XP a single completion may award.
const MaxXPReward = 1000

// validFrequencies is the set of recognized frequency values.
var validFrequencies = map[string]bool{
	FrequencyDaily:  true,
	FrequencyWeekly: true,
}

// Habit validation errors.
var (
	ErrInvalidTitle     = errors.New("habit title must not be empty")
	ErrInvalidFrequency = errors.New("unknown habit frequency")
	ErrInvalidXPReward  = errors.New("xp reward must be between 0 and 1000")
)

// Habit is a recurring user-defined task that awards XP when completed.
// The engine never mutates a habit; deactivation is a soft delete that
// keeps historical completions intact.
type Habit struct {
	HabitID     string    // UUID v7, generated on creation.
	Title       string    // Human-readable title (required, non-empty).
	Description string    // Optional free-form note.
	Frequency   string    // One of the Frequency constants.
	XPReward    int       // XP awarded per completion, 0..MaxXPReward.
	Active      bool      // False once the habit is paused.
	CreatedAt   time.Time // Timestamp of creation.
}

// Validate checks that the habit is well-formed for insertion.
// It returns a sentinel error from this package on failure.
func (h *Habit) Validate() error {
	if h.Title == "" {
		return ErrInvalidTitle
	}
	if !validFrequencies[h.Frequency] {
		return ErrInvalidFrequency
	}
	if h.XPReward < 0 || h.XPReward > MaxXPReward {
		return ErrInvalidXPReward
	}
	return nil
}
