// Export command for the estatedesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estatedesk/estatedesk/pkg/types"
)

var (
	exportFormat string
	exportDir    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export property records to CSV or JSON",
	Long: `Export writes every property record, with owner names resolved, to a
timestamped file in the output directory.

Example:
  estatedesk export --format csv --out ./exports`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", types.ExportFormatCSV, "export format: csv or json")
	exportCmd.Flags().StringVar(&exportDir, "out", ".", "output directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	records, err := eng.Properties.List(types.PropertyFilter{})
	if err != nil {
		return fmt.Errorf("list properties: %w", err)
	}

	path, err := eng.ExportProperties(exportDir, records, exportFormat)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("Exported %d record(s) to %s\n", len(records), path)
	return nil
}
