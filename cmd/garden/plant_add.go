// Plant add command creates a new plant.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/garden/pkg/types"
)

var plantAddSpecies string

var plantAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a plant",
	Long: `Add creates a plant that starts at 0 XP and stage 0. Plants grow
only through completed habits.

Example:
  garden plant add Ferdinand
  garden plant add Fern --species fern`,
	Args: cobra.ExactArgs(1),
	RunE: runPlantAdd,
}

func init() {
	plantAddCmd.Flags().StringVar(&plantAddSpecies, "species", "", "species label (default: sprout)")
}

func runPlantAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	plant := &types.Plant{
		Name:    args[0],
		Species: plantAddSpecies,
	}

	id, err := backend.InsertPlant(cmd.Context(), resolveOwner(), plant)
	if err != nil {
		return fmt.Errorf("add plant: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"plant_id": id})
	}
	fmt.Println("Created plant", id)
	return nil
}
