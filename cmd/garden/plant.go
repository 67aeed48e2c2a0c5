// Plant command group for the garden CLI.
package main

import (
	"github.com/spf13/cobra"
)

var plantCmd = &cobra.Command{
	Use:   "plant",
	Short: "Manage plants",
}

func init() {
	plantCmd.AddCommand(plantAddCmd)
	plantCmd.AddCommand(plantListCmd)
}
