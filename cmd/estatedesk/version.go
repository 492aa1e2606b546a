// Version command for the estatedesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/estatedesk/estatedesk/pkg/estate"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the estatedesk version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("estatedesk", estate.Version)
	},
}
