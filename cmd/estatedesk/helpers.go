// Shared helpers for estatedesk CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/estatedesk/estatedesk/internal/logging"
	"github.com/estatedesk/estatedesk/internal/paths"
	"github.com/estatedesk/estatedesk/pkg/estate"
	"github.com/estatedesk/estatedesk/pkg/types"
)

// openEngine resolves the data directory, builds the engine configuration
// from flags and config.yaml, and opens the engine. The caller must defer
// engine.Close().
func openEngine() (*estate.Engine, error) {
	dataDir, err := paths.ResolveDataDir(flagDataDir, loadedConfig.DataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		DataDir:     dataDir,
		StorageRoot: loadedConfig.StorageRoot,
		CompanyCode: loadedConfig.CompanyCode,
		BackupDir:   loadedConfig.BackupDir,
	}

	eng, err := estate.Open(cfg, estate.Options{Logger: logging.New()})
	if err != nil {
		return nil, fmt.Errorf("open engine: %w", err)
	}

	return eng, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
