// Package estate composes the data engine: one handle per store and
// engine, explicitly wired together. Callers hold the Engine and delegate
// to the store they need; there is no shared global registry.
package estate

import (
	"github.com/sirupsen/logrus"

	"github.com/estatedesk/estatedesk/internal/activity"
	"github.com/estatedesk/estatedesk/internal/backup"
	"github.com/estatedesk/estatedesk/internal/export"
	"github.com/estatedesk/estatedesk/internal/sqlite"
	"github.com/estatedesk/estatedesk/pkg/types"
)

// Engine is the full surface the orchestration layer (GUI or CLI) talks
// to. Each field is an independent collaborator over the same store.
type Engine struct {
	Owners     *sqlite.OwnerStore
	Properties *sqlite.PropertyStore
	Photos     *sqlite.PhotoStore
	Reference  *sqlite.ReferenceStore
	Search     *sqlite.SearchEngine
	Activity   *activity.Logger
	Backups    *backup.Engine

	store *sqlite.Store
	cfg   types.Config
}

// Options tunes engine construction.
type Options struct {
	// Logger is the diagnostic logger. Nil means silent.
	Logger *logrus.Logger

	// Files overrides the photo byte tier. Nil means the local filesystem.
	Files types.FileStore
}

// Open builds the engine over the configured data directory, wiring the
// activity logger into every store.
func Open(cfg types.Config, opts Options) (*Engine, error) {
	cfg = cfg.WithDefaults()

	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}

	act := activity.New(cfg.DataDir, logger)

	store, err := sqlite.Open(cfg, sqlite.Options{
		Logger:   logger,
		Activity: act,
		Files:    opts.Files,
	})
	if err != nil {
		return nil, err
	}

	return &Engine{
		Owners:     store.Owners(),
		Properties: store.Properties(),
		Photos:     store.Photos(),
		Reference:  store.Reference(),
		Search:     store.Search(),
		Activity:   act,
		Backups:    backup.New(cfg.BackupDir, store, logger, act),
		store:      store,
		cfg:        cfg,
	}, nil
}

// Close releases the underlying store.
func (e *Engine) Close() error {
	return e.store.Close()
}

// Config returns the effective configuration.
func (e *Engine) Config() types.Config {
	return e.cfg
}

// Statistics summarizes the store for reporting.
func (e *Engine) Statistics() (*types.StoreStats, error) {
	return e.store.Statistics()
}

// ExportProperties writes records to dir in the given format and returns
// the created file path. Read-only with respect to the store.
func (e *Engine) ExportProperties(dir string, records []types.Property, format string) (string, error) {
	return export.Properties(dir, records, format)
}
