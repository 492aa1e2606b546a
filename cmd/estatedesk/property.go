// Property commands for the estatedesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estatedesk/estatedesk/pkg/types"
)

var (
	propPropertyType string
	propBuildType    string
	propYearBuilt    int
	propArea         float64
	propUnit         string
	propFacade       float64
	propDepth        float64
	propBedrooms     int
	propBathrooms    int
	propIsCorner     bool
	propOfferType    string
	propProvince     string
	propRegion       string
	propAddress      string
	propOwnerCode    string
	propDescription  string

	propFilterOwner    string
	propFilterType     string
	propFilterProvince string
	propFilterOffer    string
)

var propertyCmd = &cobra.Command{
	Use:   "property",
	Short: "Manage property records",
}

var propertyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new property",
	Long: `Create registers a new property and prints the generated property code.

Classification codes (--type, --build-type, --unit, --offer, --province,
--region) must exist in the reference data; --owner must name an existing
owner code.

Example:
  estatedesk property create --type 03001 --area 145.75 --bedrooms 3 \
    --province 01001 --address "Hay Al-Jamia, street 14" --owner AB12`,
	Args: cobra.NoArgs,
	RunE: runPropertyCreate,
}

var propertyUpdateCmd = &cobra.Command{
	Use:   "update <property-code>",
	Short: "Update an existing property",
	Long:  "Update changes the supplied fields of a property. The property code and company code never change.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPropertyUpdate,
}

var propertyDeleteCmd = &cobra.Command{
	Use:   "delete <property-code>",
	Short: "Delete a property and its photos",
	Args:  cobra.ExactArgs(1),
	RunE:  runPropertyDelete,
}

var propertyGetCmd = &cobra.Command{
	Use:   "get <property-code>",
	Short: "Show one property",
	Args:  cobra.ExactArgs(1),
	RunE:  runPropertyGet,
}

var propertyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List properties",
	Args:  cobra.NoArgs,
	RunE:  runPropertyList,
}

func registerPropertyFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&propPropertyType, "type", "", "property type code")
	cmd.Flags().StringVar(&propBuildType, "build-type", "", "build type code")
	cmd.Flags().IntVar(&propYearBuilt, "year-built", 0, "construction year")
	cmd.Flags().Float64Var(&propArea, "area", 0, "area in the configured unit")
	cmd.Flags().StringVar(&propUnit, "unit", "", "unit of measure code")
	cmd.Flags().Float64Var(&propFacade, "facade", 0, "facade length")
	cmd.Flags().Float64Var(&propDepth, "depth", 0, "depth")
	cmd.Flags().IntVar(&propBedrooms, "bedrooms", 0, "bedroom count")
	cmd.Flags().IntVar(&propBathrooms, "bathrooms", 0, "bathroom count")
	cmd.Flags().BoolVar(&propIsCorner, "corner", false, "corner lot")
	cmd.Flags().StringVar(&propOfferType, "offer", "", "offer type code")
	cmd.Flags().StringVar(&propProvince, "province", "", "province code")
	cmd.Flags().StringVar(&propRegion, "region", "", "region code")
	cmd.Flags().StringVar(&propAddress, "address", "", "street address")
	cmd.Flags().StringVar(&propOwnerCode, "owner", "", "owner code")
	cmd.Flags().StringVar(&propDescription, "description", "", "free-form description")
}

func init() {
	registerPropertyFieldFlags(propertyCreateCmd)
	_ = propertyCreateCmd.MarkFlagRequired("type")
	_ = propertyCreateCmd.MarkFlagRequired("area")
	_ = propertyCreateCmd.MarkFlagRequired("address")

	registerPropertyFieldFlags(propertyUpdateCmd)

	propertyListCmd.Flags().StringVar(&propFilterOwner, "owner", "", "filter by owner code")
	propertyListCmd.Flags().StringVar(&propFilterType, "type", "", "filter by property type code")
	propertyListCmd.Flags().StringVar(&propFilterProvince, "province", "", "filter by province code")
	propertyListCmd.Flags().StringVar(&propFilterOffer, "offer", "", "filter by offer type code")

	propertyCmd.AddCommand(propertyCreateCmd)
	propertyCmd.AddCommand(propertyUpdateCmd)
	propertyCmd.AddCommand(propertyDeleteCmd)
	propertyCmd.AddCommand(propertyGetCmd)
	propertyCmd.AddCommand(propertyListCmd)
}

func runPropertyCreate(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	code, err := eng.Properties.Create(types.Property{
		PropertyType:  propPropertyType,
		BuildType:     propBuildType,
		YearBuilt:     propYearBuilt,
		Area:          propArea,
		UnitOfMeasure: propUnit,
		Facade:        propFacade,
		Depth:         propDepth,
		Bedrooms:      propBedrooms,
		Bathrooms:     propBathrooms,
		IsCorner:      propIsCorner,
		OfferType:     propOfferType,
		ProvinceCode:  propProvince,
		RegionCode:    propRegion,
		Address:       propAddress,
		OwnerCode:     propOwnerCode,
		Description:   propDescription,
	})
	if err != nil {
		return fmt.Errorf("create property: %w", err)
	}

	if flagJSON {
		prop, err := eng.Properties.Get(code)
		if err != nil {
			return fmt.Errorf("get property: %w", err)
		}
		return printJSON(prop)
	}

	fmt.Printf("Created property: %s\n", code)
	return nil
}

func runPropertyUpdate(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	prop, err := eng.Properties.Get(args[0])
	if err != nil {
		return fmt.Errorf("get property: %w", err)
	}

	applyPropertyFlags(cmd, prop)

	if err := eng.Properties.Update(args[0], *prop); err != nil {
		return fmt.Errorf("update property: %w", err)
	}

	fmt.Printf("Updated property: %s\n", args[0])
	return nil
}

// applyPropertyFlags overlays only the flags the user set onto the stored
// record, so an update never clobbers fields the user did not mention.
func applyPropertyFlags(cmd *cobra.Command, p *types.Property) {
	flags := cmd.Flags()
	if flags.Changed("type") {
		p.PropertyType = propPropertyType
	}
	if flags.Changed("build-type") {
		p.BuildType = propBuildType
	}
	if flags.Changed("year-built") {
		p.YearBuilt = propYearBuilt
	}
	if flags.Changed("area") {
		p.Area = propArea
	}
	if flags.Changed("unit") {
		p.UnitOfMeasure = propUnit
	}
	if flags.Changed("facade") {
		p.Facade = propFacade
	}
	if flags.Changed("depth") {
		p.Depth = propDepth
	}
	if flags.Changed("bedrooms") {
		p.Bedrooms = propBedrooms
	}
	if flags.Changed("bathrooms") {
		p.Bathrooms = propBathrooms
	}
	if flags.Changed("corner") {
		p.IsCorner = propIsCorner
	}
	if flags.Changed("offer") {
		p.OfferType = propOfferType
	}
	if flags.Changed("province") {
		p.ProvinceCode = propProvince
	}
	if flags.Changed("region") {
		p.RegionCode = propRegion
	}
	if flags.Changed("address") {
		p.Address = propAddress
	}
	if flags.Changed("owner") {
		p.OwnerCode = propOwnerCode
	}
	if flags.Changed("description") {
		p.Description = propDescription
	}
}

func runPropertyDelete(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	if err := eng.Properties.Delete(args[0]); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	fmt.Printf("Deleted property: %s\n", args[0])
	return nil
}

func runPropertyGet(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	prop, err := eng.Properties.Get(args[0])
	if err != nil {
		return fmt.Errorf("get property: %w", err)
	}

	if flagJSON {
		return printJSON(prop)
	}

	printPropertyLine(*prop)
	if prop.Description != "" {
		fmt.Printf("  %s\n", prop.Description)
	}
	return nil
}

func runPropertyList(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	props, err := eng.Properties.List(types.PropertyFilter{
		OwnerCode:    propFilterOwner,
		PropertyType: propFilterType,
		ProvinceCode: propFilterProvince,
		OfferType:    propFilterOffer,
	})
	if err != nil {
		return fmt.Errorf("list properties: %w", err)
	}

	if flagJSON {
		return printJSON(props)
	}

	for _, p := range props {
		printPropertyLine(p)
	}
	fmt.Printf("%d propert(ies)\n", len(props))
	return nil
}

func printPropertyLine(p types.Property) {
	owner := p.OwnerName
	if owner == "" {
		owner = "-"
	}
	fmt.Printf("%s  type=%s  area=%.2f  owner=%s  %s\n",
		p.PropertyCode, p.PropertyType, p.Area, owner, p.Address)
}
