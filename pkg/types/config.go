package types

import "fmt"

// Config holds the settings the data engine reads at open time. Every field
// has a documented default; an absent value falls back, never errors.
type Config struct {
	// DataDir is the directory holding the structured store and the
	// activity log. Defaults to .estatedesk-db under the working directory.
	DataDir string `json:"data_dir" mapstructure:"data_dir"`

	// StorageRoot is the directory tree holding photo bytes, keyed by
	// company and property code. May live on a different tier than the
	// structured store. Defaults to DataDir/photos.
	StorageRoot string `json:"storage_root" mapstructure:"storage_root"`

	// CompanyCode is the tenant identifier prefixed onto generated
	// property codes. Four alphanumeric characters. Defaults to A001.
	CompanyCode string `json:"company_code" mapstructure:"company_code"`

	// BackupDir is where full snapshots are written. Defaults to
	// DataDir/backups.
	BackupDir string `json:"backup_dir" mapstructure:"backup_dir"`
}

// Default configuration values.
const (
	DefaultDataDirName   = ".estatedesk-db"
	DefaultCompanyCode   = "A001"
	DefaultStorageSubdir = "photos"
	DefaultBackupSubdir  = "backups"
	DatabaseFileName     = "estatedesk.db"
	ActivityLogFileName  = "activity.jsonl"
)

// CompanyCodeLength is the fixed prefix length of generated property codes.
const CompanyCodeLength = 4

// WithDefaults returns a copy of the config with every empty field replaced
// by its documented default.
func (c Config) WithDefaults() Config {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDirName
	}
	if c.StorageRoot == "" {
		c.StorageRoot = c.DataDir + "/" + DefaultStorageSubdir
	}
	if c.CompanyCode == "" {
		c.CompanyCode = DefaultCompanyCode
	}
	if c.BackupDir == "" {
		c.BackupDir = c.DataDir + "/" + DefaultBackupSubdir
	}
	return c
}

// Validate checks that the company code can serve as a property code prefix.
func (c Config) Validate() error {
	if len(c.CompanyCode) != CompanyCodeLength {
		return &ValidationError{
			Field:  "company_code",
			Reason: fmt.Sprintf("must be exactly %d characters", CompanyCodeLength),
		}
	}
	for _, r := range c.CompanyCode {
		if !isCodeRune(r) {
			return &ValidationError{Field: "company_code", Reason: "must be alphanumeric"}
		}
	}
	return nil
}

func isCodeRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	}
	return false
}
