// Search command for the estatedesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estatedesk/estatedesk/pkg/types"
)

var (
	searchType      string
	searchBuildType string
	searchOffer     string
	searchProvince  string
	searchRegion    string
	searchCorner    bool
	searchOwnerName string
	searchText      string
	searchMinArea   float64
	searchMaxArea   float64
	searchMinBeds   int
	searchMaxBeds   int
	searchMinBaths  int
	searchMaxBaths  int
	searchYearFrom  int
	searchYearTo    int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search properties by combined criteria",
	Long: `Search filters properties by any combination of criteria; every
supplied criterion narrows the result. With no criteria it lists everything.

Example:
  estatedesk search --type 03001 --min-area 100 --max-area 200 --corner
  estatedesk search --text "Hay Al-Jamia"`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchType, "type", "", "property type code")
	searchCmd.Flags().StringVar(&searchBuildType, "build-type", "", "build type code")
	searchCmd.Flags().StringVar(&searchOffer, "offer", "", "offer type code")
	searchCmd.Flags().StringVar(&searchProvince, "province", "", "province code")
	searchCmd.Flags().StringVar(&searchRegion, "region", "", "region code")
	searchCmd.Flags().BoolVar(&searchCorner, "corner", false, "corner lots only (--corner=false for non-corner)")
	searchCmd.Flags().StringVar(&searchOwnerName, "owner-name", "", "owner name substring")
	searchCmd.Flags().StringVar(&searchText, "text", "", "free text across address, description, owner, and code")
	searchCmd.Flags().Float64Var(&searchMinArea, "min-area", 0, "minimum area")
	searchCmd.Flags().Float64Var(&searchMaxArea, "max-area", 0, "maximum area")
	searchCmd.Flags().IntVar(&searchMinBeds, "min-bedrooms", 0, "minimum bedrooms")
	searchCmd.Flags().IntVar(&searchMaxBeds, "max-bedrooms", 0, "maximum bedrooms")
	searchCmd.Flags().IntVar(&searchMinBaths, "min-bathrooms", 0, "minimum bathrooms")
	searchCmd.Flags().IntVar(&searchMaxBaths, "max-bathrooms", 0, "maximum bathrooms")
	searchCmd.Flags().IntVar(&searchYearFrom, "year-from", 0, "earliest construction year")
	searchCmd.Flags().IntVar(&searchYearTo, "year-to", 0, "latest construction year")
}

func runSearch(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	c := types.SearchCriteria{
		PropertyType: searchType,
		BuildType:    searchBuildType,
		OfferType:    searchOffer,
		ProvinceCode: searchProvince,
		RegionCode:   searchRegion,
		OwnerName:    searchOwnerName,
		FreeText:     searchText,
	}

	// Flags that carry meaning at their zero value only count when set.
	flags := cmd.Flags()
	if flags.Changed("corner") {
		c.IsCorner = &searchCorner
	}
	if flags.Changed("min-area") {
		c.MinArea = &searchMinArea
	}
	if flags.Changed("max-area") {
		c.MaxArea = &searchMaxArea
	}
	if flags.Changed("min-bedrooms") {
		c.MinBedrooms = &searchMinBeds
	}
	if flags.Changed("max-bedrooms") {
		c.MaxBedrooms = &searchMaxBeds
	}
	if flags.Changed("min-bathrooms") {
		c.MinBathrooms = &searchMinBaths
	}
	if flags.Changed("max-bathrooms") {
		c.MaxBathrooms = &searchMaxBaths
	}
	if flags.Changed("year-from") {
		c.YearFrom = &searchYearFrom
	}
	if flags.Changed("year-to") {
		c.YearTo = &searchYearTo
	}

	props, err := eng.Search.Search(c)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if flagJSON {
		return printJSON(props)
	}

	for _, p := range props {
		printPropertyLine(p)
	}
	fmt.Printf("%d match(es)\n", len(props))
	return nil
}
