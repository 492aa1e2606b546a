// Backup commands for the estatedesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupKeep int

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create, list, and restore database backups",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Snapshot the database into the backup directory",
	Args:  cobra.NoArgs,
	RunE:  runBackupCreate,
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available backups, newest first",
	Args:  cobra.NoArgs,
	RunE:  runBackupList,
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "Replace the live database with a backup",
	Long: `Restore verifies the backup file, snapshots the current database as a
safety backup, then swaps the backup in. A file that fails verification is
never restored.`,
	Args: cobra.ExactArgs(1),
	RunE: runBackupRestore,
}

var backupCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete old backups, keeping the newest",
	Args:  cobra.NoArgs,
	RunE:  runBackupCleanup,
}

func init() {
	backupCleanupCmd.Flags().IntVar(&backupKeep, "keep", 5, "backups to keep")

	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupCleanupCmd)
}

func runBackupCreate(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	path, err := eng.Backups.CreateFullBackup()
	if err != nil {
		return fmt.Errorf("create backup: %w", err)
	}

	fmt.Printf("Created backup: %s\n", path)
	return nil
}

func runBackupList(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	backups, err := eng.Backups.ListBackups()
	if err != nil {
		return fmt.Errorf("list backups: %w", err)
	}

	if flagJSON {
		return printJSON(backups)
	}

	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.CreatedAt.Format("2006-01-02 15:04:05"), b.Path, b.Size)
	}
	fmt.Printf("%d backup(s)\n", len(backups))
	return nil
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	if err := eng.Backups.Restore(args[0]); err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	fmt.Printf("Restored from: %s\n", args[0])
	return nil
}

func runBackupCleanup(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	removed, err := eng.Backups.Cleanup(backupKeep)
	if err != nil {
		return fmt.Errorf("cleanup backups: %w", err)
	}

	fmt.Printf("Removed %d backup(s)\n", removed)
	return nil
}
