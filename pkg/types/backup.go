package types

import "time"

// Backup snapshot formats.
const (
	BackupFormatSQLite = "sqlite"
)

// Export formats supported by the export engine.
const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

// BackupManifest describes one snapshot of the structured store. Backups
// are ordered by creation time for retention pruning.
type BackupManifest struct {
	CreatedAt  time.Time `json:"created_at"`
	SourcePath string    `json:"source_path"`
	Size       int64     `json:"size"`
	Format     string    `json:"format"`

	// Path is where the snapshot lives on disk. Populated when listing;
	// not part of the persisted manifest.
	Path string `json:"-"`
}
