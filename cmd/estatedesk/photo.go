// Photo commands for the estatedesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var photoDisplayName string

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Manage property photos",
}

var photoAddCmd = &cobra.Command{
	Use:   "add <property-code> <source-file>",
	Short: "Attach a photo to a property",
	Long: `Add copies the source image into managed storage and records it
against the property.

Example:
  estatedesk photo add A0011XYZ ./front.jpg --name facade`,
	Args: cobra.ExactArgs(2),
	RunE: runPhotoAdd,
}

var photoListCmd = &cobra.Command{
	Use:   "list <property-code>",
	Short: "List photos of a property",
	Args:  cobra.ExactArgs(1),
	RunE:  runPhotoList,
}

var photoDeleteCmd = &cobra.Command{
	Use:   "delete <property-code> <file-name>",
	Short: "Remove a photo",
	Args:  cobra.ExactArgs(2),
	RunE:  runPhotoDelete,
}

func init() {
	photoAddCmd.Flags().StringVar(&photoDisplayName, "name", "", "display name for the stored file")

	photoCmd.AddCommand(photoAddCmd)
	photoCmd.AddCommand(photoListCmd)
	photoCmd.AddCommand(photoDeleteCmd)
}

func runPhotoAdd(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	photo, err := eng.Photos.Add(args[0], args[1], photoDisplayName)
	if err != nil {
		return fmt.Errorf("add photo: %w", err)
	}

	if flagJSON {
		return printJSON(photo)
	}

	fmt.Printf("Added photo: %s\n", photo.FileName)
	return nil
}

func runPhotoList(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	photos, err := eng.Photos.List(args[0])
	if err != nil {
		return fmt.Errorf("list photos: %w", err)
	}

	if flagJSON {
		return printJSON(photos)
	}

	for _, p := range photos {
		fmt.Printf("%s  %s\n", p.FileName, p.StoragePath)
	}
	fmt.Printf("%d photo(s)\n", len(photos))
	return nil
}

func runPhotoDelete(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	if err := eng.Photos.Delete(args[0], args[1]); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}

	fmt.Printf("Deleted photo: %s\n", args[1])
	return nil
}
