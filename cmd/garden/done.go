// Done command records a habit completion and awards XP.
package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/garden/internal/engine"
	"github.com/verdant-labs/garden/pkg/types"
)

var (
	doneFlagPlant string
	doneFlagDay   string
)

var doneCmd = &cobra.Command{
	Use:   "done <habit-id>",
	Short: "Complete a habit for a day",
	Long: `Done records that a habit was completed and credits its XP reward
to a plant. Each habit can be completed at most once per calendar day;
repeating the command reports the existing completion and moves no XP.

The plant defaults to the focal plant. The day defaults to today.

Example:
  garden done 0190cafe-...
  garden done 0190cafe-... --plant 0190beef-...
  garden done 0190cafe-... --day 2026-08-28`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func init() {
	doneCmd.Flags().StringVar(&doneFlagPlant, "plant", "", "plant to credit (default: focal plant)")
	doneCmd.Flags().StringVar(&doneFlagDay, "day", "", "completion day as YYYY-MM-DD (default: today)")
}

func runDone(cmd *cobra.Command, args []string) error {
	habitID := args[0]
	ctx := cmd.Context()
	owner := resolveOwner()

	day := types.Today()
	if doneFlagDay != "" {
		parsed, err := types.ParseDay(doneFlagDay)
		if err != nil {
			return err
		}
		day = parsed
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	habit, err := findHabit(ctx, backend, owner, habitID)
	if err != nil {
		return err
	}

	plantID := doneFlagPlant
	if plantID == "" {
		plantID, err = resolveFocalPlant(ctx, backend, owner)
		if err != nil {
			return err
		}
	}

	records, err := backend.FetchCompletions(ctx, owner, day)
	if err != nil {
		return fmt.Errorf("fetch completions: %w", err)
	}
	done := engine.NewTodaySet(records)

	workflow := engine.NewWorkflow(engine.NewTransactor(backend, owner), nil)
	outcome, err := workflow.Submit(ctx, habit, plantID, day, done)
	if errors.Is(err, engine.ErrAlreadyCompleted) {
		outcome, err = types.OutcomeAlreadyApplied, nil
	}
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(map[string]string{
			"outcome":  string(outcome),
			"habit_id": habit.HabitID,
			"plant_id": plantID,
			"day":      string(day),
		})
	}

	if outcome == types.OutcomeAlreadyApplied {
		fmt.Printf("Already recorded for %s; no XP moved\n", day)
		return nil
	}
	fmt.Printf("Completed %q for %s: +%d xp to plant %s\n",
		habit.Title, day, habit.XPReward, shortID(plantID))
	return nil
}

// findHabit looks a habit up by ID across all habits, paused included, so
// the workflow guard can tell "unknown" apart from "paused".
func findHabit(ctx context.Context, store types.Store, owner, habitID string) (*types.Habit, error) {
	habits, err := store.FetchHabits(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("fetch habits: %w", err)
	}
	for _, h := range habits {
		if h.HabitID == habitID {
			return h, nil
		}
	}
	return nil, fmt.Errorf("habit %s: %w", habitID, types.ErrNotFound)
}

// resolveFocalPlant resolves the focal plant against the live plant list.
func resolveFocalPlant(ctx context.Context, store types.Store, owner string) (string, error) {
	prefStore, err := openPrefs()
	if err != nil {
		return "", err
	}
	plants, err := store.FetchLivePlants(ctx, owner)
	if err != nil {
		return "", fmt.Errorf("fetch plants: %w", err)
	}

	plantID, ok, err := engine.NewFocalSelector(prefStore).Resolve(plants)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", engine.ErrNoPlants
	}
	return plantID, nil
}
