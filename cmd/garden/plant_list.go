// Plant list command displays plants with their growth progress.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/garden/pkg/progression"
	"github.com/verdant-labs/garden/pkg/types"
)

var plantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plants",
	Long: `List displays plants, newest first, with XP and growth stage.

Example:
  garden plant list
  garden plant list --json`,
	Args: cobra.NoArgs,
	RunE: runPlantList,
}

func runPlantList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	plants, err := backend.FetchLivePlants(cmd.Context(), resolveOwner())
	if err != nil {
		return fmt.Errorf("fetch plants: %w", err)
	}

	if flagJSON {
		return printJSON(plants)
	}
	printPlantTable(plants)
	return nil
}

// printPlantTable prints plants in a human-readable table format.
func printPlantTable(plants []*types.Plant) {
	if len(plants) == 0 {
		fmt.Println("No plants found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tSPECIES\tXP\tSTAGE\tNEXT")
	fmt.Fprintln(w, "--\t----\t-------\t--\t-----\t----")
	for _, p := range plants {
		prog := progression.WithinStage(p.XP)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d xp\n",
			shortID(p.PlantID),
			p.Name,
			p.Species,
			p.XP,
			prog.Stage,
			prog.NextStageXP,
		)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d plant(s)\n", len(plants))
}
