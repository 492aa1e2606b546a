package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/estatedesk/estatedesk/pkg/types"
)

// photoColumns is the capability set probed from the deployed photos table.
// Some long-lived databases predate the surrogate id column (and sometimes
// the extension and upload timestamp), so the accessor adapts to whatever
// is actually there instead of assuming the shipped DDL.
type photoColumns struct {
	hasID         bool
	hasExtension  bool
	hasUploadedAt bool
}

// probePhotoColumns introspects the photos table once, at open time. The
// resulting shape is fixed for the process lifetime.
func probePhotoColumns(db *sql.DB) (photoColumns, error) {
	rows, err := db.Query("PRAGMA table_info(photos)")
	if err != nil {
		return photoColumns{}, err
	}
	defer rows.Close()

	var cols photoColumns
	for rows.Next() {
		var (
			cid     int
			name    string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return photoColumns{}, err
		}
		switch name {
		case "id":
			cols.hasID = true
		case "extension":
			cols.hasExtension = true
		case "uploaded_at":
			cols.hasUploadedAt = true
		}
	}
	return cols, rows.Err()
}

// PhotoStore manages photo metadata rows and the backing files. The row is
// written only after the byte copy succeeds, so a failed copy leaves no
// orphan metadata.
type PhotoStore struct {
	s *Store
}

// Add copies the image at sourcePath into the storage root under
// company/property and records the metadata row. displayName, when given,
// becomes the visible part of the stored file name.
func (ph *PhotoStore) Add(propertyCode, sourcePath, displayName string) (*types.Photo, error) {
	ph.s.mu.Lock()
	defer ph.s.mu.Unlock()

	ok, err := ph.s.properties.existsLocked(propertyCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &types.NotFoundError{Entity: "property", Code: propertyCode}
	}

	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, &types.IOError{Op: "read", Path: sourcePath, Err: err}
	}

	ext := strings.ToLower(filepath.Ext(sourcePath))
	base := displayName
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	}
	base = sanitizeFileName(base)

	// A short random prefix keeps two uploads of the same picture from
	// clobbering each other.
	fileName := fmt.Sprintf("%s_%s%s", shortID(), base, ext)
	dir := filepath.Join(ph.s.cfg.StorageRoot, ph.s.cfg.CompanyCode, propertyCode)
	dest := filepath.Join(dir, fileName)

	if err := ph.s.files.Write(dest, data); err != nil {
		return nil, fmt.Errorf("store image bytes: %w", err)
	}

	photo := types.Photo{
		PropertyCode: propertyCode,
		StoragePath:  dir,
		FileName:     fileName,
		Extension:    ext,
	}
	if err := ph.insertLocked(&photo); err != nil {
		// Roll the byte copy back so the tiers stay in step.
		if derr := ph.s.files.Delete(dest); derr != nil {
			ph.s.log.WithError(derr).WithField("path", dest).Warn("orphan image left behind")
		}
		return nil, err
	}

	if err := ph.s.properties.setHasPhotosLocked(propertyCode, true); err != nil {
		ph.s.log.WithError(err).Warn("updating has_photos flag failed")
	}

	ph.s.log.WithFields(map[string]any{
		"property_code": propertyCode,
		"file_name":     fileName,
	}).Info("photo added")
	ph.s.record(types.ActionAddPhoto, propertyCode, fileName)
	return &photo, nil
}

// List returns the photo rows for one property.
func (ph *PhotoStore) List(propertyCode string) ([]types.Photo, error) {
	ph.s.mu.RLock()
	defer ph.s.mu.RUnlock()
	return ph.listLocked(propertyCode)
}

// Delete removes one photo row and its backing file. Identity is
// (property_code, file_name); when the table carries a surrogate id the
// row is deleted through it, otherwise directly through the pair. A backing
// file that is already gone is only a warning.
func (ph *PhotoStore) Delete(propertyCode, fileName string) error {
	ph.s.mu.Lock()
	defer ph.s.mu.Unlock()

	photos, err := ph.listLocked(propertyCode)
	if err != nil {
		return err
	}
	var target *types.Photo
	for i := range photos {
		if photos[i].FileName == fileName {
			target = &photos[i]
			break
		}
	}
	if target == nil {
		return &types.NotFoundError{Entity: "photo", Code: fileName}
	}

	if ph.s.photoCols.hasID && target.ID != 0 {
		_, err = ph.s.db.Exec("DELETE FROM photos WHERE id = ?", target.ID)
	} else {
		_, err = ph.s.db.Exec(
			"DELETE FROM photos WHERE property_code = ? AND file_name = ?",
			propertyCode, fileName,
		)
	}
	if err != nil {
		return fmt.Errorf("delete photo row: %w", err)
	}

	ph.removeFileLocked(*target)

	remaining, err := ph.listLocked(propertyCode)
	if err == nil && len(remaining) == 0 {
		if err := ph.s.properties.setHasPhotosLocked(propertyCode, false); err != nil {
			ph.s.log.WithError(err).Warn("updating has_photos flag failed")
		}
	}

	ph.s.record(types.ActionDeletePhoto, propertyCode, fileName)
	return nil
}

// listLocked reads photo rows using only the probed columns.
func (ph *PhotoStore) listLocked(propertyCode string) ([]types.Photo, error) {
	cols := []string{"property_code", "storage_path", "file_name"}
	if ph.s.photoCols.hasID {
		cols = append([]string{"id"}, cols...)
	}
	if ph.s.photoCols.hasExtension {
		cols = append(cols, "extension")
	}
	if ph.s.photoCols.hasUploadedAt {
		cols = append(cols, "uploaded_at")
	}

	query := fmt.Sprintf(
		"SELECT %s FROM photos WHERE property_code = ? ORDER BY file_name",
		strings.Join(cols, ", "),
	)
	rows, err := ph.s.db.Query(query, propertyCode)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	var out []types.Photo
	for rows.Next() {
		var p types.Photo
		var uploaded string
		dest := []any{}
		if ph.s.photoCols.hasID {
			dest = append(dest, &p.ID)
		}
		dest = append(dest, &p.PropertyCode, &p.StoragePath, &p.FileName)
		if ph.s.photoCols.hasExtension {
			dest = append(dest, &p.Extension)
		}
		if ph.s.photoCols.hasUploadedAt {
			dest = append(dest, &uploaded)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		if uploaded != "" {
			p.UploadedAt = parseTime(uploaded)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// insertLocked writes the metadata row using only the probed columns.
func (ph *PhotoStore) insertLocked(p *types.Photo) error {
	cols := []string{"property_code", "storage_path", "file_name"}
	args := []any{p.PropertyCode, p.StoragePath, p.FileName}
	if ph.s.photoCols.hasExtension {
		cols = append(cols, "extension")
		args = append(args, p.Extension)
	}
	if ph.s.photoCols.hasUploadedAt {
		cols = append(cols, "uploaded_at")
		args = append(args, nowString())
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	query := fmt.Sprintf(
		"INSERT INTO photos (%s) VALUES (%s)",
		strings.Join(cols, ", "), placeholders,
	)
	res, err := ph.s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("insert photo row: %w", err)
	}
	if ph.s.photoCols.hasID {
		if id, err := res.LastInsertId(); err == nil {
			p.ID = id
		}
	}
	return nil
}

// removeFileLocked deletes the backing file, degrading to a warning when it
// is already missing.
func (ph *PhotoStore) removeFileLocked(p types.Photo) {
	path := filepath.Join(p.StoragePath, p.FileName)
	if !ph.s.files.Exists(path) {
		ph.s.log.WithField("path", path).Warn("photo file already missing")
		return
	}
	if err := ph.s.files.Delete(path); err != nil {
		ph.s.log.WithError(err).WithField("path", path).Warn("deleting photo file failed")
	}
}

// sanitizeFileName strips path separators and whitespace so a display name
// cannot escape the property's directory.
func sanitizeFileName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, "._")
	if name == "" {
		return "photo"
	}
	return name
}

// shortID returns an eight-character random prefix for stored file names.
func shortID() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
