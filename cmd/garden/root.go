// Root command for the garden CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/verdant-labs/garden/internal/paths"
	"github.com/verdant-labs/garden/pkg/garden"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagOwner     string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configDataDir string
	configOwner   string
	configWindow  int
)

var rootCmd = &cobra.Command{
	Use:     "garden",
	Short:   "Garden is a habit tracker that grows plants from completed habits",
	Version: garden.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configOwner = cfg.GetString(cfgKeyOwner)
		configWindow = cfg.GetInt(cfgKeyWindowDays)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.garden-db)")
	rootCmd.PersistentFlags().StringVar(&flagOwner, "owner", "", "owner scope (default: owner from config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(habitCmd)
	rootCmd.AddCommand(plantCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(focusCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > GARDEN_DATA_DIR env > default $(CWD)/.garden-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > GARDEN_CONFIG_DIR env > DefaultConfigDir().
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveOwner returns the owner scope: --owner flag > config.yaml owner.
// Store operations reject an empty owner with types.ErrNoOwner.
func resolveOwner() string {
	if flagOwner != "" {
		return flagOwner
	}
	return configOwner
}
