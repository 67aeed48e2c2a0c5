// Focus command shows or sets the focal plant.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/garden/internal/engine"
)

var focusCmd = &cobra.Command{
	Use:   "focus [plant-id]",
	Short: "Show or set the focal plant",
	Long: `Focus shows the plant that receives XP by default. With a plant ID
argument it records that plant as the focal plant for this device.

Example:
  garden focus
  garden focus 0190beef-...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFocus,
}

func runFocus(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	prefStore, err := openPrefs()
	if err != nil {
		return err
	}
	selector := engine.NewFocalSelector(prefStore)
	owner := resolveOwner()

	if len(args) == 1 {
		plantID := args[0]
		// Validate the plant before recording the choice.
		if _, err := backend.GetPlant(cmd.Context(), owner, plantID); err != nil {
			return fmt.Errorf("plant %s: %w", plantID, err)
		}
		if err := selector.Choose(plantID); err != nil {
			return err
		}
		fmt.Println("Focal plant set to", plantID)
		return nil
	}

	plants, err := backend.FetchLivePlants(cmd.Context(), owner)
	if err != nil {
		return fmt.Errorf("fetch plants: %w", err)
	}
	plantID, ok, err := selector.Resolve(plants)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No plants yet; add one with: garden plant add <name>")
		return nil
	}

	plant, err := backend.GetPlant(cmd.Context(), owner, plantID)
	if err != nil {
		return fmt.Errorf("plant %s: %w", plantID, err)
	}
	if flagJSON {
		return printJSON(plant)
	}
	fmt.Printf("Focal plant: %s (%s, stage %d, %d xp)\n",
		plant.Name, shortID(plant.PlantID), plant.Stage, plant.XP)
	return nil
}
