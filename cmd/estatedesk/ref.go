// Reference-data commands for the estatedesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estatedesk/estatedesk/pkg/types"
)

var refDescription string

var refCmd = &cobra.Command{
	Use:   "ref",
	Short: "Manage reference data (provinces, types, units)",
}

var refTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the reference record types",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		names := map[types.RecordType]string{
			types.RecordTypeProvince:      "province",
			types.RecordTypeRegion:        "region",
			types.RecordTypePropertyType:  "property type",
			types.RecordTypeBuildType:     "build type",
			types.RecordTypeUnitOfMeasure: "unit of measure",
			types.RecordTypeOfferType:     "offer type",
		}
		for _, rt := range types.RecordTypes {
			fmt.Printf("%s  %s\n", rt, names[rt])
		}
	},
}

var refListCmd = &cobra.Command{
	Use:   "list <record-type>",
	Short: "List reference codes of one type",
	Long: `List prints every reference code of the given record type.

Record types are two-digit discriminators; see "estatedesk ref types".`,
	Args: cobra.ExactArgs(1),
	RunE: runRefList,
}

var refSetCmd = &cobra.Command{
	Use:   "set <record-type> <code> <name>",
	Short: "Create or update a reference code",
	Args:  cobra.ExactArgs(3),
	RunE:  runRefSet,
}

var refDeleteCmd = &cobra.Command{
	Use:   "delete <record-type> <code>",
	Short: "Delete a reference code",
	Args:  cobra.ExactArgs(2),
	RunE:  runRefDelete,
}

func init() {
	refSetCmd.Flags().StringVar(&refDescription, "description", "", "optional description")

	refCmd.AddCommand(refTypesCmd)
	refCmd.AddCommand(refListCmd)
	refCmd.AddCommand(refSetCmd)
	refCmd.AddCommand(refDeleteCmd)
}

func runRefList(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	codes, err := eng.Reference.ListByType(types.RecordType(args[0]))
	if err != nil {
		return fmt.Errorf("list reference codes: %w", err)
	}

	if flagJSON {
		return printJSON(codes)
	}

	for _, rc := range codes {
		fmt.Printf("%s  %s\n", rc.Code, rc.Name)
	}
	fmt.Printf("%d code(s)\n", len(codes))
	return nil
}

func runRefSet(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	rc := types.ReferenceCode{
		RecordType:  types.RecordType(args[0]),
		Code:        args[1],
		Name:        args[2],
		Description: refDescription,
	}
	if err := eng.Reference.Upsert(rc); err != nil {
		return fmt.Errorf("set reference code: %w", err)
	}

	fmt.Printf("Set reference code: %s/%s\n", args[0], args[1])
	return nil
}

func runRefDelete(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	if err := eng.Reference.Delete(types.RecordType(args[0]), args[1]); err != nil {
		return fmt.Errorf("delete reference code: %w", err)
	}

	fmt.Printf("Deleted reference code: %s/%s\n", args[0], args[1])
	return nil
}
