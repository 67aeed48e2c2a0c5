// Habit rows: insertion, listing, and the pause/resume soft delete.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/verdant-labs/garden/pkg/types"
)

const habitColumns = "habit_id, title, description, frequency, xp_reward, is_active, created_at"

// InsertHabit validates the habit, assigns a UUID v7 and creation time, and
// persists it. New habits are always active.
func (b *Backend) InsertHabit(ctx context.Context, owner string, habit *types.Habit) (string, error) {
	db, err := b.conn()
	if err != nil {
		return "", err
	}
	if owner == "" {
		return "", types.ErrNoOwner
	}
	if err := habit.Validate(); err != nil {
		return "", err
	}

	habit.HabitID = generateUUID()
	habit.Active = true
	habit.CreatedAt = time.Now().UTC()

	_, err = db.ExecContext(ctx,
		"INSERT INTO habits (habit_id, owner_id, title, description, frequency, xp_reward, is_active, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		habit.HabitID, owner, habit.Title, habit.Description, habit.Frequency,
		habit.XPReward, boolToInt(habit.Active), habit.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("inserting habit: %w", err)
	}
	return habit.HabitID, nil
}

// FetchHabits returns all of the owner's habits, newest first.
func (b *Backend) FetchHabits(ctx context.Context, owner string) ([]*types.Habit, error) {
	return b.fetchHabits(ctx, owner, false)
}

// FetchActiveHabits returns the owner's habits eligible for completion,
// newest first. Paused habits are excluded but their history remains.
func (b *Backend) FetchActiveHabits(ctx context.Context, owner string) ([]*types.Habit, error) {
	return b.fetchHabits(ctx, owner, true)
}

func (b *Backend) fetchHabits(ctx context.Context, owner string, activeOnly bool) ([]*types.Habit, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if owner == "" {
		return nil, types.ErrNoOwner
	}

	query := "SELECT " + habitColumns + " FROM habits WHERE owner_id = ?"
	if activeOnly {
		query += " AND is_active = 1"
	}
	query += " ORDER BY created_at DESC, habit_id DESC"

	rows, err := db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("fetching habits: %w", err)
	}
	defer rows.Close()

	var habits []*types.Habit
	for rows.Next() {
		habit, err := hydrateHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating habit: %w", err)
		}
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetching habits: %w", err)
	}
	return habits, nil
}

// SetHabitActive pauses or resumes a habit. Returns ErrNotFound for an
// unknown habit.
func (b *Backend) SetHabitActive(ctx context.Context, owner, habitID string, active bool) error {
	db, err := b.conn()
	if err != nil {
		return err
	}
	if owner == "" {
		return types.ErrNoOwner
	}
	if habitID == "" {
		return types.ErrInvalidID
	}

	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	res, err := db.ExecContext(ctx,
		"UPDATE habits SET is_active = ? WHERE habit_id = ? AND owner_id = ?",
		boolToInt(active), habitID, owner,
	)
	if err != nil {
		return fmt.Errorf("updating habit %s: %w", habitID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating habit %s: %w", habitID, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for hydration helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// hydrateHabit scans one habit row.
func hydrateHabit(row rowScanner) (*types.Habit, error) {
	var (
		habit       types.Habit
		description sql.NullString
		active      int
		createdAt   string
	)
	if err := row.Scan(&habit.HabitID, &habit.Title, &description,
		&habit.Frequency, &habit.XPReward, &active, &createdAt); err != nil {
		return nil, err
	}
	habit.Description = description.String
	habit.Active = active != 0
	habit.CreatedAt = parseTimestamp(createdAt)
	return &habit, nil
}

// parseTimestamp parses a stored RFC3339 timestamp. A malformed value
// hydrates as the zero time rather than failing the whole read.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
