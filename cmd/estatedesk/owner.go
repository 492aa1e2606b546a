// Owner commands for the estatedesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estatedesk/estatedesk/pkg/types"
)

var (
	ownerName  string
	ownerPhone string
	ownerNote  string
)

var ownerCmd = &cobra.Command{
	Use:   "owner",
	Short: "Manage property owners",
}

var ownerCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new owner",
	Long: `Create registers a new owner and prints the generated owner code.

Example:
  estatedesk owner create --name "Ali Hassan" --phone "07801234567"`,
	Args: cobra.NoArgs,
	RunE: runOwnerCreate,
}

var ownerUpdateCmd = &cobra.Command{
	Use:   "update <owner-code>",
	Short: "Update an existing owner",
	Args:  cobra.ExactArgs(1),
	RunE:  runOwnerUpdate,
}

var ownerDeleteCmd = &cobra.Command{
	Use:   "delete <owner-code>",
	Short: "Delete an owner",
	Long:  "Delete removes an owner. Owners still referenced by properties cannot be deleted.",
	Args:  cobra.ExactArgs(1),
	RunE:  runOwnerDelete,
}

var ownerGetCmd = &cobra.Command{
	Use:   "get <owner-code>",
	Short: "Show one owner",
	Args:  cobra.ExactArgs(1),
	RunE:  runOwnerGet,
}

var ownerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all owners",
	Args:  cobra.NoArgs,
	RunE:  runOwnerList,
}

func init() {
	ownerCreateCmd.Flags().StringVar(&ownerName, "name", "", "owner name (required)")
	ownerCreateCmd.Flags().StringVar(&ownerPhone, "phone", "", "contact phone number")
	ownerCreateCmd.Flags().StringVar(&ownerNote, "note", "", "free-form note")
	_ = ownerCreateCmd.MarkFlagRequired("name")

	ownerUpdateCmd.Flags().StringVar(&ownerName, "name", "", "owner name")
	ownerUpdateCmd.Flags().StringVar(&ownerPhone, "phone", "", "contact phone number")
	ownerUpdateCmd.Flags().StringVar(&ownerNote, "note", "", "free-form note")

	ownerCmd.AddCommand(ownerCreateCmd)
	ownerCmd.AddCommand(ownerUpdateCmd)
	ownerCmd.AddCommand(ownerDeleteCmd)
	ownerCmd.AddCommand(ownerGetCmd)
	ownerCmd.AddCommand(ownerListCmd)
}

func runOwnerCreate(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	code, err := eng.Owners.Create(types.Owner{
		Name:  ownerName,
		Phone: ownerPhone,
		Note:  ownerNote,
	})
	if err != nil {
		return fmt.Errorf("create owner: %w", err)
	}

	if flagJSON {
		owner, err := eng.Owners.Get(code)
		if err != nil {
			return fmt.Errorf("get owner: %w", err)
		}
		return printJSON(owner)
	}

	fmt.Printf("Created owner: %s\n", code)
	return nil
}

func runOwnerUpdate(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	owner, err := eng.Owners.Get(args[0])
	if err != nil {
		return fmt.Errorf("get owner: %w", err)
	}

	// Only flags the user actually set override the stored record.
	if cmd.Flags().Changed("name") {
		owner.Name = ownerName
	}
	if cmd.Flags().Changed("phone") {
		owner.Phone = ownerPhone
	}
	if cmd.Flags().Changed("note") {
		owner.Note = ownerNote
	}

	if err := eng.Owners.Update(args[0], *owner); err != nil {
		return fmt.Errorf("update owner: %w", err)
	}

	fmt.Printf("Updated owner: %s\n", args[0])
	return nil
}

func runOwnerDelete(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	if err := eng.Owners.Delete(args[0]); err != nil {
		return fmt.Errorf("delete owner: %w", err)
	}

	fmt.Printf("Deleted owner: %s\n", args[0])
	return nil
}

func runOwnerGet(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	owner, err := eng.Owners.Get(args[0])
	if err != nil {
		return fmt.Errorf("get owner: %w", err)
	}

	if flagJSON {
		return printJSON(owner)
	}

	fmt.Printf("%s  %s  %s\n", owner.OwnerCode, owner.Name, owner.Phone)
	if owner.Note != "" {
		fmt.Printf("  note: %s\n", owner.Note)
	}
	return nil
}

func runOwnerList(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	owners, err := eng.Owners.List()
	if err != nil {
		return fmt.Errorf("list owners: %w", err)
	}

	if flagJSON {
		return printJSON(owners)
	}

	for _, o := range owners {
		fmt.Printf("%s  %s  %s\n", o.OwnerCode, o.Name, o.Phone)
	}
	fmt.Printf("%d owner(s)\n", len(owners))
	return nil
}
