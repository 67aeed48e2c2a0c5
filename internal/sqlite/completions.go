// Completion rows and the atomic complete-habit transaction.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/verdant-labs/garden/pkg/progression"
	"github.com/verdant-labs/garden/pkg/types"
)

// CompleteHabit records a completion for (habitID, day) and credits plantID
// with the habit's XP reward, in one transaction. The INSERT OR IGNORE
// against the unique (habit_id, completed_on) index decides the race: zero
// rows affected means some call already holds the day, and the transaction
// ends without moving any XP, regardless of which plant this call named.
func (b *Backend) CompleteHabit(ctx context.Context, owner, habitID, plantID string, day types.Day) (types.Outcome, error) {
	db, err := b.conn()
	if err != nil {
		return "", err
	}
	if owner == "" {
		return "", types.ErrNoOwner
	}
	if habitID == "" || plantID == "" {
		return "", types.ErrInvalidID
	}
	if err := day.Validate(); err != nil {
		return "", err
	}

	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		reward int
		active int
	)
	err = tx.QueryRowContext(ctx,
		"SELECT xp_reward, is_active FROM habits WHERE habit_id = ? AND owner_id = ?",
		habitID, owner,
	).Scan(&reward, &active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", types.ErrNotFound
		}
		return "", fmt.Errorf("looking up habit %s: %w", habitID, err)
	}
	if active == 0 {
		return "", types.ErrHabitInactive
	}

	var one int
	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM plants WHERE plant_id = ? AND owner_id = ?",
		plantID, owner,
	).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", types.ErrNotFound
		}
		return "", fmt.Errorf("looking up plant %s: %w", plantID, err)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO habit_completions (completion_id, owner_id, habit_id, plant_id, completed_on, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		generateUUID(), owner, habitID, plantID, string(day), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("recording completion: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("recording completion: %w", err)
	}
	if inserted == 0 {
		return types.OutcomeAlreadyApplied, nil
	}

	// Keep the stored stage consistent with the derivation from xp; readers
	// recompute it anyway. SQLite integer division matches floor here
	// because xp and rewards are non-negative.
	_, err = tx.ExecContext(ctx,
		"UPDATE plants SET xp = xp + ?, stage = (xp + ?) / ? WHERE plant_id = ? AND owner_id = ?",
		reward, reward, progression.StageXPUnit, plantID, owner,
	)
	if err != nil {
		return "", fmt.Errorf("awarding xp to plant %s: %w", plantID, err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing completion: %w", err)
	}
	return types.OutcomeApplied, nil
}

// FetchCompletions returns the owner's completion records for one day.
func (b *Backend) FetchCompletions(ctx context.Context, owner string, day types.Day) ([]*types.Completion, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if owner == "" {
		return nil, types.ErrNoOwner
	}
	if err := day.Validate(); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT completion_id, habit_id, plant_id, completed_on, created_at FROM habit_completions WHERE owner_id = ? AND completed_on = ?",
		owner, string(day),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching completions: %w", err)
	}
	defer rows.Close()

	var completions []*types.Completion
	for rows.Next() {
		var (
			c           types.Completion
			completedOn string
			createdAt   string
		)
		if err := rows.Scan(&c.CompletionID, &c.HabitID, &c.PlantID, &completedOn, &createdAt); err != nil {
			return nil, fmt.Errorf("hydrating completion: %w", err)
		}
		c.Day = types.Day(completedOn)
		c.CreatedAt = parseTimestamp(createdAt)
		completions = append(completions, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetching completions: %w", err)
	}
	return completions, nil
}

// CountCompletions returns the number of completion records with
// from <= day <= to. Days compare as strings by construction.
func (b *Backend) CountCompletions(ctx context.Context, owner string, from, to types.Day) (int, error) {
	db, err := b.conn()
	if err != nil {
		return 0, err
	}
	if owner == "" {
		return 0, types.ErrNoOwner
	}
	if err := from.Validate(); err != nil {
		return 0, err
	}
	if err := to.Validate(); err != nil {
		return 0, err
	}

	var count int
	err = db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM habit_completions WHERE owner_id = ? AND completed_on BETWEEN ? AND ?",
		owner, string(from), string(to),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting completions: %w", err)
	}
	return count, nil
}
