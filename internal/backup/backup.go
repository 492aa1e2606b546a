// Package backup snapshots the structured store and manages snapshot
// retention. Restore fails closed: a snapshot that does not verify as a
// healthy database is never applied.
package backup

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/estatedesk/estatedesk/pkg/types"
)

// sqliteMagic is the 16-byte header every well-formed database file starts
// with.
var sqliteMagic = []byte("SQLite format 3\x00")

// backupPrefix and backupExt shape snapshot file names:
// estatedesk_backup_20060102_150405.db plus a _metadata.json sidecar.
const (
	backupPrefix   = "estatedesk_backup_"
	backupExt      = ".db"
	metadataSuffix = "_metadata.json"
	stampLayout    = "20060102_150405"
)

// Snapshotter is what the engine needs from the store: the live file
// location, an exclusive-locked copy out, and an exclusive-locked swap in.
type Snapshotter interface {
	Path() string
	Snapshot(dst string) error
	Swap(src string) error
}

// requiredTables must exist in a snapshot for it to be restorable.
var requiredTables = []string{"reference_codes", "owners", "properties", "photos"}

// Engine creates, verifies, restores, lists, and prunes snapshots.
type Engine struct {
	dir      string
	store    Snapshotter
	log      *logrus.Entry
	activity types.ActivityRecorder
}

// New creates an engine writing snapshots into dir.
func New(dir string, store Snapshotter, log *logrus.Logger, activity types.ActivityRecorder) *Engine {
	if activity == nil {
		activity = types.NopRecorder{}
	}
	return &Engine{
		dir:      dir,
		store:    store,
		log:      log.WithField("component", "backup"),
		activity: activity,
	}
}

// CreateFullBackup snapshots the store to a timestamped file and writes a
// manifest sidecar. The store lock is held for the duration of the copy so
// the snapshot is consistent.
func (e *Engine) CreateFullBackup() (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	now := time.Now()
	path := filepath.Join(e.dir, backupPrefix+now.Format(stampLayout)+backupExt)
	// Two backups inside one second would collide on the stamp.
	for i := 1; fileExists(path); i++ {
		path = filepath.Join(e.dir, fmt.Sprintf("%s%s_%d%s", backupPrefix, now.Format(stampLayout), i, backupExt))
	}

	if err := e.store.Snapshot(path); err != nil {
		return "", fmt.Errorf("snapshot store: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat snapshot: %w", err)
	}

	manifest := types.BackupManifest{
		CreatedAt:  now.UTC(),
		SourcePath: e.store.Path(),
		Size:       info.Size(),
		Format:     types.BackupFormatSQLite,
	}
	if err := writeManifest(manifestPath(path), manifest); err != nil {
		// The snapshot itself is good; a missing sidecar only loses
		// provenance detail.
		e.log.WithError(err).Warn("writing backup manifest failed")
	}

	e.log.WithField("path", path).Info("backup created")
	e.activity.Record(types.ActionBackup, filepath.Base(path), "")
	return path, nil
}

// Restore verifies the snapshot at path and swaps it in, taking a safety
// backup of the current state first. A snapshot that fails any integrity
// check is rejected with a restore error and the live store is untouched.
func (e *Engine) Restore(path string) error {
	if err := e.verify(path); err != nil {
		return err
	}

	if _, err := e.CreateFullBackup(); err != nil {
		return fmt.Errorf("safety backup before restore: %w", err)
	}

	if err := e.store.Swap(path); err != nil {
		return fmt.Errorf("apply snapshot: %w", err)
	}

	e.log.WithField("path", path).Info("store restored")
	e.activity.Record(types.ActionRestore, filepath.Base(path), "")
	return nil
}

// verify checks the snapshot is a complete, healthy database before it is
// allowed anywhere near the live store.
func (e *Engine) verify(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &types.RestoreError{Path: path, Reason: "snapshot not readable"}
	}
	header := make([]byte, len(sqliteMagic))
	_, readErr := f.Read(header)
	f.Close()
	if readErr != nil || !bytes.Equal(header, sqliteMagic) {
		return &types.RestoreError{Path: path, Reason: "not a SQLite database"}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &types.RestoreError{Path: path, Reason: "snapshot cannot be opened"}
	}
	defer db.Close()

	var result string
	if err := db.QueryRow("PRAGMA integrity_check").Scan(&result); err != nil || result != "ok" {
		return &types.RestoreError{Path: path, Reason: "integrity check failed"}
	}

	for _, table := range requiredTables {
		var one int
		err := db.QueryRow(
			"SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&one)
		if err != nil {
			return &types.RestoreError{Path: path, Reason: fmt.Sprintf("missing table %q", table)}
		}
	}
	return nil
}

// ListBackups returns the manifests of every snapshot in the backup
// directory, newest first. Snapshots without a sidecar still appear, with
// fields reconstructed from the file itself.
func (e *Engine) ListBackups() ([]types.BackupManifest, error) {
	entries, err := os.ReadDir(e.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}

	var manifests []types.BackupManifest
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupExt) {
			continue
		}
		path := filepath.Join(e.dir, name)

		m, err := readManifest(manifestPath(path))
		if err != nil {
			info, statErr := entry.Info()
			if statErr != nil {
				continue
			}
			m = types.BackupManifest{
				CreatedAt: info.ModTime().UTC(),
				Size:      info.Size(),
				Format:    types.BackupFormatSQLite,
			}
		}
		m.Path = path
		manifests = append(manifests, m)
	}

	sort.Slice(manifests, func(i, j int) bool {
		return manifests[i].CreatedAt.After(manifests[j].CreatedAt)
	})
	return manifests, nil
}

// Cleanup deletes all but the keep newest snapshots, oldest first,
// returning how many were removed.
func (e *Engine) Cleanup(keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	manifests, err := e.ListBackups()
	if err != nil {
		return 0, err
	}
	if len(manifests) <= keep {
		return 0, nil
	}

	// Oldest first, so an interruption mid-loop still leaves the newest
	// snapshots standing.
	removed := 0
	for i := len(manifests) - 1; i >= keep; i-- {
		m := manifests[i]
		if err := os.Remove(m.Path); err != nil {
			e.log.WithError(err).WithField("path", m.Path).Warn("deleting old backup failed")
			continue
		}
		os.Remove(manifestPath(m.Path))
		removed++
	}

	e.log.WithField("removed", removed).Info("old backups cleaned up")
	return removed, nil
}

func manifestPath(snapshotPath string) string {
	return strings.TrimSuffix(snapshotPath, backupExt) + metadataSuffix
}

func writeManifest(path string, m types.BackupManifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readManifest(path string) (types.BackupManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.BackupManifest{}, err
	}
	var m types.BackupManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return types.BackupManifest{}, err
	}
	return m, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
