// Package sqlite implements the structured local store for estatedesk:
// owners, properties, photo metadata, and reference data in one SQLite
// database, with a coarse store-wide lock serializing writers.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/estatedesk/estatedesk/internal/localfs"
	"github.com/estatedesk/estatedesk/pkg/types"
)

// timeFormat is how timestamps are persisted.
const timeFormat = time.RFC3339

// Options carries the injectable collaborators of the store. Zero-value
// fields fall back to safe defaults (discarded logs, no activity tracking,
// the OS filesystem for photo bytes).
type Options struct {
	Logger   *logrus.Logger
	Activity types.ActivityRecorder
	Files    types.FileStore
}

// Store owns the SQLite database and hands out the per-entity accessors.
// Mutating operations take the write half of mu so each create/update/delete
// appears atomic to callers; reads share the read half.
type Store struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
	cfg  types.Config

	log      *logrus.Entry
	activity types.ActivityRecorder
	files    types.FileStore

	validate *validator.Validate
	refCache *cache.Cache

	photoCols photoColumns

	owners     *OwnerStore
	properties *PropertyStore
	photos     *PhotoStore
	reference  *ReferenceStore
	search     *SearchEngine
}

// Open creates the data directory if needed, opens (or creates) the
// database, applies the schema, seeds reference data on first run, and
// probes the photo column set once for the process lifetime.
func Open(cfg types.Config, opts Options) (*Store, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.PanicLevel)
	}
	activity := opts.Activity
	if activity == nil {
		activity = types.NopRecorder{}
	}
	files := opts.Files
	if files == nil {
		files = localfs.Store{}
	}

	s := &Store{
		path:     filepath.Join(cfg.DataDir, types.DatabaseFileName),
		cfg:      cfg,
		log:      logger.WithField("component", "store"),
		activity: activity,
		files:    files,
		validate: newValidator(),
		refCache: cache.New(5*time.Minute, 10*time.Minute),
	}

	if err := s.open(); err != nil {
		return nil, err
	}

	s.owners = &OwnerStore{s: s}
	s.properties = &PropertyStore{s: s}
	s.photos = &PhotoStore{s: s}
	s.reference = &ReferenceStore{s: s}
	s.search = &SearchEngine{s: s}

	s.log.WithField("path", s.path).Info("store opened")
	return s, nil
}

// open dials the database file and prepares it for use. Called from Open
// and again after a restore swaps the file underneath us.
func (s *Store) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	// One connection keeps the driver serialized with our own locking.
	db.SetMaxOpenConns(1)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	if err := seedReferenceData(db); err != nil {
		db.Close()
		return fmt.Errorf("seed reference data: %w", err)
	}

	cols, err := probePhotoColumns(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("probe photo columns: %w", err)
	}

	s.db = db
	s.photoCols = cols
	s.refCache.Flush()
	return nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Config returns the effective configuration the store was opened with.
func (s *Store) Config() types.Config {
	return s.cfg
}

// Owners returns the owner accessor.
func (s *Store) Owners() *OwnerStore { return s.owners }

// Properties returns the property accessor.
func (s *Store) Properties() *PropertyStore { return s.properties }

// Photos returns the photo metadata accessor.
func (s *Store) Photos() *PhotoStore { return s.photos }

// Reference returns the reference data accessor.
func (s *Store) Reference() *ReferenceStore { return s.reference }

// Search returns the search engine.
func (s *Store) Search() *SearchEngine { return s.search }

// Snapshot copies the live database file to dst while holding the exclusive
// lock, so no writer can produce a torn snapshot. The WAL is checkpointed
// first so the copy is self-contained.
func (s *Store) Snapshot(dst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return fmt.Errorf("store is closed")
	}
	if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		s.log.WithError(err).Warn("wal checkpoint before snapshot failed")
	}
	return copyFile(s.path, dst)
}

// Swap replaces the live database file with the verified snapshot at src
// and reopens the store. Held exclusively for the whole duration; a failure
// to reopen leaves the store closed rather than half-swapped.
func (s *Store) Swap(src string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("close before swap: %w", err)
		}
		s.db = nil
	}

	// Stale WAL or SHM files would shadow the restored content.
	os.Remove(s.path + "-wal")
	os.Remove(s.path + "-shm")

	tmp := s.path + ".swap"
	if err := copyFile(src, tmp); err != nil {
		return fmt.Errorf("stage snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace database: %w", err)
	}

	return s.open()
}

// record forwards one mutation to the activity recorder. Never fails the
// caller.
func (s *Store) record(actionType, entityCode, detail string) {
	s.activity.Record(actionType, entityCode, detail)
}

// newValidator builds the struct validator used for static field
// constraints, reporting fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct maps the first failing static constraint to the store's
// validation error kind.
func (s *Store) validateStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		first := verrs[0]
		return &types.ValidationError{
			Field:  first.Field(),
			Reason: fmt.Sprintf("failed %q constraint", first.Tag()),
		}
	}
	return &types.ValidationError{Field: "record", Reason: err.Error()}
}

// copyFile copies src to dst byte-for-byte, creating parent directories.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
