// Init command for the estatedesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estatedesk/estatedesk/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize estatedesk storage",
	Long: `Init creates the configuration directory with a default config.yaml,
creates the data directory, and seeds the reference data.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}

		// Opening the engine creates the data directory, the database
		// schema, and the seed reference data.
		eng, err := openEngine()
		if err != nil {
			return err
		}
		defer eng.Close()

		fmt.Println("Estatedesk initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", eng.Config().DataDir)
		return nil
	},
}
