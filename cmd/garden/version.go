// Version command for the garden CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/garden/pkg/garden"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the garden version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("garden", garden.Version)
	},
}
