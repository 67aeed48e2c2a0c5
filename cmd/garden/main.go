// Package main provides the garden CLI, a habit tracker where completed
// habits feed XP to plants.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/verdant-labs/garden/internal/engine"
	"github.com/verdant-labs/garden/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "garden:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code: user errors (bad input,
// unknown IDs, guard rejections) exit 1, everything else exits 2.
func exitCode(err error) int {
	userErrors := []error{
		types.ErrInvalidTitle,
		types.ErrInvalidFrequency,
		types.ErrInvalidXPReward,
		types.ErrInvalidName,
		types.ErrInvalidDay,
		types.ErrInvalidID,
		types.ErrNotFound,
		types.ErrHabitInactive,
		types.ErrNoOwner,
		engine.ErrNoHabit,
		engine.ErrNoPlants,
	}
	for _, sentinel := range userErrors {
		if errors.Is(err, sentinel) {
			return exitUserError
		}
	}
	return exitSysError
}
