// Stats command for the estatedesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estatedesk/estatedesk/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the store",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	stats, err := eng.Statistics()
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	if flagJSON {
		return printJSON(stats)
	}

	fmt.Printf("owners:     %d\n", stats.TotalOwners)
	fmt.Printf("properties: %d\n", stats.TotalProperties)
	fmt.Printf("photos:     %d\n", stats.TotalPhotos)
	printGroup("by property type", stats.PropertiesByType)
	printGroup("by offer type", stats.PropertiesByOffer)
	printGroup("by province", stats.PropertiesByProvince)
	return nil
}

func printGroup(title string, groups []types.GroupCount) {
	if len(groups) == 0 {
		return
	}
	fmt.Println(title + ":")
	for _, g := range groups {
		name := g.Name
		if name == "" {
			name = g.Code
		}
		fmt.Printf("  %-24s %d\n", name, g.Count)
	}
}
