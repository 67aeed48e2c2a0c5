// Habit list command displays habits.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/garden/pkg/types"
)

var habitListAll bool

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits",
	Long: `List displays habits, newest first. Paused habits are hidden
unless --all is given.

Example:
  garden habit list
  garden habit list --all
  garden habit list --json`,
	Args: cobra.NoArgs,
	RunE: runHabitList,
}

func init() {
	habitListCmd.Flags().BoolVar(&habitListAll, "all", false, "include paused habits")
}

func runHabitList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	var habits []*types.Habit
	if habitListAll {
		habits, err = backend.FetchHabits(cmd.Context(), resolveOwner())
	} else {
		habits, err = backend.FetchActiveHabits(cmd.Context(), resolveOwner())
	}
	if err != nil {
		return fmt.Errorf("fetch habits: %w", err)
	}

	if flagJSON {
		return printJSON(habits)
	}
	printHabitTable(habits)
	return nil
}

// printHabitTable prints habits in a human-readable table format.
func printHabitTable(habits []*types.Habit) {
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tFREQUENCY\tXP\tSTATUS")
	fmt.Fprintln(w, "--\t-----\t---------\t--\t------")
	for _, h := range habits {
		title := h.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		status := "active"
		if !h.Active {
			status = "paused"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			shortID(h.HabitID),
			title,
			h.Frequency,
			h.XPReward,
			status,
		)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d habit(s)\n", len(habits))
}
