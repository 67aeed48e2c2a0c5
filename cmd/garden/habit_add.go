// Habit add command creates a new habit.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/garden/pkg/types"
)

var (
	habitAddDescription string
	habitAddFrequency   string
	habitAddXP          int
)

var habitAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a habit",
	Long: `Add creates a habit that awards XP each day it is completed.

Example:
  garden habit add "Drink water" --xp 5
  garden habit add "Weekly review" --frequency weekly --xp 20`,
	Args: cobra.ExactArgs(1),
	RunE: runHabitAdd,
}

func init() {
	habitAddCmd.Flags().StringVar(&habitAddDescription, "description", "", "free-form note")
	habitAddCmd.Flags().StringVar(&habitAddFrequency, "frequency", types.FrequencyDaily, "habit frequency (daily, weekly)")
	habitAddCmd.Flags().IntVar(&habitAddXP, "xp", 5, "xp awarded per completion (0-1000)")
}

func runHabitAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	habit := &types.Habit{
		Title:       args[0],
		Description: habitAddDescription,
		Frequency:   habitAddFrequency,
		XPReward:    habitAddXP,
	}

	id, err := backend.InsertHabit(cmd.Context(), resolveOwner(), habit)
	if err != nil {
		return fmt.Errorf("add habit: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"habit_id": id})
	}
	fmt.Println("Created habit", id)
	return nil
}
