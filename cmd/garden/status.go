// Status command renders the garden dashboard.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/garden/internal/engine"
	"github.com/verdant-labs/garden/pkg/types"
)

var statusFlagWindow int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's habits and plant growth",
	Long: `Status shows today's habit checklist, each plant's growth, and a
rolling completion count over the activity window.

Example:
  garden status
  garden status --window 30
  garden status --json`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().IntVar(&statusFlagWindow, "window", 0, "activity window in days (default: window_days from config.yaml, else 7)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	owner := resolveOwner()
	window := statusFlagWindow
	if window <= 0 {
		window = configWindow
	}

	agg := engine.NewAggregator(backend, owner, window)
	snap, err := agg.Load(cmd.Context(), types.Today())
	if err != nil {
		return err
	}

	prefStore, err := openPrefs()
	if err != nil {
		return err
	}
	focalID, _, err := engine.NewFocalSelector(prefStore).Resolve(snap.Plants)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(statusView(snap, focalID))
	}
	printStatus(snap, focalID)
	return nil
}

// statusView shapes a snapshot for JSON output.
func statusView(snap *engine.Snapshot, focalID string) map[string]any {
	return map[string]any{
		"day":           snap.Today,
		"window_days":   snap.Window,
		"done_today":    snap.DoneCount(),
		"total_habits":  snap.TotalCount(),
		"rolling_count": snap.RollingCount,
		"focal_plant":   focalID,
		"habits":        snap.Habits,
		"plants":        snap.Plants,
	}
}

func printStatus(snap *engine.Snapshot, focalID string) {
	fmt.Printf("Garden on %s: %d/%d habits done, %d completions in the last %d days\n",
		snap.Today, snap.DoneCount(), snap.TotalCount(), snap.RollingCount, snap.Window)

	if len(snap.Habits) > 0 {
		fmt.Println()
		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "\tHABIT\tXP")
		for _, h := range snap.Habits {
			mark := "[ ]"
			if snap.CompletedToday.Has(h.HabitID) {
				mark = "[x]"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\n", mark, h.Title, h.XPReward)
		}
		w.Flush()
		for _, line := range strings.Split(sb.String(), "\n") {
			fmt.Println(strings.TrimRight(line, " "))
		}
	}

	if len(snap.Plants) > 0 {
		fmt.Println()
		for _, p := range snap.Plants {
			prog := snap.PlantProgress(p)
			focal := ""
			if p.PlantID == focalID {
				focal = " *"
			}
			fmt.Printf("%s%s: stage %d, %d xp %s\n",
				p.Name, focal, prog.Stage, p.XP, renderBar(prog.Fraction))
		}
	}
}

// renderBar draws a ten-cell progress bar for the fraction into the next
// stage.
func renderBar(fraction float64) string {
	const cells = 10
	filled := int(fraction * cells)
	if filled > cells {
		filled = cells
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", cells-filled) + "]"
}
