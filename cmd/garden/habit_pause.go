// Habit pause and resume commands toggle a habit's active flag.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var habitPauseCmd = &cobra.Command{
	Use:   "pause <habit-id>",
	Short: "Pause a habit",
	Long: `Pause deactivates a habit. A paused habit cannot be completed and
is hidden from the default list, but its completion history is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setHabitActive(cmd, args[0], false)
	},
}

var habitResumeCmd = &cobra.Command{
	Use:   "resume <habit-id>",
	Short: "Resume a paused habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setHabitActive(cmd, args[0], true)
	},
}

func setHabitActive(cmd *cobra.Command, habitID string, active bool) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	if err := backend.SetHabitActive(cmd.Context(), resolveOwner(), habitID, active); err != nil {
		return fmt.Errorf("update habit: %w", err)
	}

	if active {
		fmt.Println("Resumed habit", habitID)
	} else {
		fmt.Println("Paused habit", habitID)
	}
	return nil
}
