package types

import "time"

// Completion is the immutable fact that a habit was completed on a given
// calendar day, crediting one plant with the habit's XP reward. At most one
// completion exists per (habit, day); the store enforces this with a unique
// index, so the pair is the real identity and CompletionID is only a row key.
type Completion struct {
	CompletionID string    // UUID v7, generated on creation.
	HabitID      string    // Habit that was completed.
	PlantID      string    // Plant credited with the XP.
	Day          Day       // Calendar day of completion.
	CreatedAt    time.Time // Timestamp the record was written.
}
