// Habit command group for the garden CLI.
package main

import (
	"github.com/spf13/cobra"
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habits",
}

func init() {
	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitListCmd)
	habitCmd.AddCommand(habitPauseCmd)
	habitCmd.AddCommand(habitResumeCmd)
}
