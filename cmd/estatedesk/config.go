// Config loading for the estatedesk CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/estatedesk/estatedesk/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir     = "data_dir"
	cfgKeyStorageRoot = "storage_root"
	cfgKeyCompanyCode = "company_code"
	cfgKeyBackupDir   = "backup_dir"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Estatedesk configuration

# Company code used as the prefix of generated property codes.
company_code: A001

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Root directory for stored property photos (defaults to <data_dir>/photos)
# storage_root:

# Directory where backups are written (defaults to <data_dir>/backups)
# backup_dir:
`

// appConfig carries the values loaded from config.yaml into the subcommands.
type appConfig struct {
	DataDir     string
	StorageRoot string
	CompanyCode string
	BackupDir   string
}

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (appConfig, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return appConfig{}, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return appConfig{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyCompanyCode, types.DefaultCompanyCode)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return appConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	return appConfig{
		DataDir:     v.GetString(cfgKeyDataDir),
		StorageRoot: v.GetString(cfgKeyStorageRoot),
		CompanyCode: v.GetString(cfgKeyCompanyCode),
		BackupDir:   v.GetString(cfgKeyBackupDir),
	}, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
