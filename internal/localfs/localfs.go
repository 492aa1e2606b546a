// Package localfs implements the photo byte-storage capability on the local
// filesystem. Deployments with a separate storage tier can substitute their
// own types.FileStore.
package localfs

import (
	"os"
	"path/filepath"

	"github.com/estatedesk/estatedesk/pkg/types"
)

// Store writes, deletes, and stats files under whatever absolute or
// relative paths it is given. The zero value is ready to use.
type Store struct{}

// Write creates parent directories as needed and writes data to path.
func (Store) Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &types.IOError{Op: "create dir for", Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &types.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Delete removes the file at path.
func (Store) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return &types.IOError{Op: "delete", Path: path, Err: err}
	}
	return nil
}

// Exists reports whether a file exists at path.
func (Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
