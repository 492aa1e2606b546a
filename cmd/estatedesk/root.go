package main

import (
	"github.com/spf13/cobra"

	"github.com/estatedesk/estatedesk/internal/paths"
	"github.com/estatedesk/estatedesk/pkg/estate"
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
	flagJSON      bool
)

// loadedConfig holds the values read from config.yaml by PersistentPreRunE
// so every subcommand can use them.
var loadedConfig appConfig

var rootCmd = &cobra.Command{
	Use:     "estatedesk",
	Short:   "Estatedesk is a local-first real-estate record keeper",
	Version: estate.Version,
	// Subcommand errors are already formatted; do not add usage noise.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		loadedConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.estatedesk-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(ownerCmd)
	rootCmd.AddCommand(propertyCmd)
	rootCmd.AddCommand(photoCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(refCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
