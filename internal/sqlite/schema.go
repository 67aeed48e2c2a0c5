// Package sqlite implements the SQLite backend for the garden store.
package sqlite

// Schema DDL. The unique index on (habit_id, completed_on) is the
// authoritative at-most-once guarantee for completions; everything the
// engine promises about duplicate submissions rests on it.
const (
	createHabits = `CREATE TABLE IF NOT EXISTS habits (
    habit_id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    frequency TEXT NOT NULL,
    xp_reward INTEGER NOT NULL,
    is_active INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

	createPlants = `CREATE TABLE IF NOT EXISTS plants (
    plant_id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    name TEXT NOT NULL,
    species TEXT NOT NULL,
    xp INTEGER NOT NULL,
    stage INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`

	createCompletions = `CREATE TABLE IF NOT EXISTS habit_completions (
    completion_id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    habit_id TEXT NOT NULL,
    plant_id TEXT NOT NULL,
    completed_on TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (habit_id) REFERENCES habits(habit_id),
    FOREIGN KEY (plant_id) REFERENCES plants(plant_id)
);`
)

// Index DDL for uniqueness and common queries.
const (
	idxCompletionsUnique  = `CREATE UNIQUE INDEX IF NOT EXISTS idx_completions_habit_day ON habit_completions(habit_id, completed_on);`
	idxCompletionsDay     = `CREATE INDEX IF NOT EXISTS idx_completions_owner_day ON habit_completions(owner_id, completed_on);`
	idxHabitsOwnerActive  = `CREATE INDEX IF NOT EXISTS idx_habits_owner_active ON habits(owner_id, is_active);`
	idxPlantsOwner        = `CREATE INDEX IF NOT EXISTS idx_plants_owner ON plants(owner_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createHabits,
	createPlants,
	createCompletions,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxCompletionsUnique,
	idxCompletionsDay,
	idxHabitsOwnerActive,
	idxPlantsOwner,
}
