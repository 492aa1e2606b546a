// Command estatedesk is the desk-side interface to the real-estate data
// engine: owners, properties, photos, search, activity, and backups.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}
