package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/estatedesk/estatedesk/pkg/types"
)

// propertySelect is the shared projection for property reads, with the
// owner name resolved through a left join.
const propertySelect = `SELECT p.property_code, p.company_code, p.property_type, p.build_type,
       p.year_built, p.area, p.unit_of_measure, p.facade, p.depth,
       p.bedrooms, p.bathrooms, p.is_corner, p.offer_type,
       p.province_code, p.region_code, p.address, p.has_photos,
       p.owner_code, p.description, p.created_at, p.updated_at,
       IFNULL(o.name, '')
  FROM properties p
  LEFT JOIN owners o ON p.owner_code = o.owner_code`

// PropertyStore manages property specification records, the central entity
// of the engine.
type PropertyStore struct {
	s *Store
}

// Create validates the record, generates a property code under the write
// lock, and persists the full record in a single statement. Returns the
// generated code.
func (ps *PropertyStore) Create(p types.Property) (string, error) {
	if err := ps.s.validateStruct(&p); err != nil {
		return "", err
	}

	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	if err := ps.checkReferencesLocked(&p); err != nil {
		return "", err
	}

	code, err := ps.s.generatePropertyCodeLocked(ps.s.cfg.CompanyCode)
	if err != nil {
		return "", err
	}

	now := nowString()
	_, err = ps.s.db.Exec(
		`INSERT INTO properties (
            property_code, company_code, property_type, build_type, year_built,
            area, unit_of_measure, facade, depth, bedrooms, bathrooms,
            is_corner, offer_type, province_code, region_code, address,
            has_photos, owner_code, description, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		code, ps.s.cfg.CompanyCode, p.PropertyType, p.BuildType, p.YearBuilt,
		p.Area, p.UnitOfMeasure, p.Facade, p.Depth, p.Bedrooms, p.Bathrooms,
		boolToInt(p.IsCorner), p.OfferType, p.ProvinceCode, p.RegionCode, p.Address,
		0, nullableCode(p.OwnerCode), p.Description, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", &types.DuplicateCodeError{Code: code}
		}
		return "", fmt.Errorf("insert property: %w", err)
	}

	ps.s.log.WithField("property_code", code).Info("property created")
	ps.s.record(types.ActionCreateProperty, code, p.Address)
	return code, nil
}

// Update replaces every mutable field of an existing property with the
// supplied record. The property code and company code never change.
func (ps *PropertyStore) Update(code string, p types.Property) error {
	if err := ps.s.validateStruct(&p); err != nil {
		return err
	}

	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	if err := ps.checkReferencesLocked(&p); err != nil {
		return err
	}

	res, err := ps.s.db.Exec(
		`UPDATE properties SET
            property_type = ?, build_type = ?, year_built = ?, area = ?,
            unit_of_measure = ?, facade = ?, depth = ?, bedrooms = ?,
            bathrooms = ?, is_corner = ?, offer_type = ?, province_code = ?,
            region_code = ?, address = ?, owner_code = ?, description = ?,
            updated_at = ?
         WHERE property_code = ?`,
		p.PropertyType, p.BuildType, p.YearBuilt, p.Area,
		p.UnitOfMeasure, p.Facade, p.Depth, p.Bedrooms,
		p.Bathrooms, boolToInt(p.IsCorner), p.OfferType, p.ProvinceCode,
		p.RegionCode, p.Address, nullableCode(p.OwnerCode), p.Description,
		nowString(), code,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	if n == 0 {
		return &types.NotFoundError{Entity: "property", Code: code}
	}

	ps.s.record(types.ActionUpdateProperty, code, p.Address)
	return nil
}

// Delete removes a property and cascades to its photo rows inside one
// transaction, then removes the backing files best-effort. Deleting an
// absent code reports not-found rather than failing loudly twice.
func (ps *PropertyStore) Delete(code string) error {
	ps.s.mu.Lock()
	defer ps.s.mu.Unlock()

	photos, err := ps.s.photos.listLocked(code)
	if err != nil {
		return err
	}

	tx, err := ps.s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM photos WHERE property_code = ?", code); err != nil {
		return fmt.Errorf("delete photo rows: %w", err)
	}
	res, err := tx.Exec("DELETE FROM properties WHERE property_code = ?", code)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if n == 0 {
		return &types.NotFoundError{Entity: "property", Code: code}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}

	// Rows are gone; stray files are a warning, not a failure.
	for _, ph := range photos {
		ps.s.photos.removeFileLocked(ph)
	}

	ps.s.log.WithField("property_code", code).Info("property deleted")
	ps.s.record(types.ActionDeleteProperty, code, fmt.Sprintf("%d photos cascaded", len(photos)))
	return nil
}

// Get retrieves one property by code, with the owner name resolved.
func (ps *PropertyStore) Get(code string) (*types.Property, error) {
	ps.s.mu.RLock()
	defer ps.s.mu.RUnlock()

	row := ps.s.db.QueryRow(propertySelect+" WHERE p.property_code = ?", code)
	p, err := scanProperty(row)
	if isNoRows(err) {
		return nil, &types.NotFoundError{Entity: "property", Code: code}
	}
	if err != nil {
		return nil, fmt.Errorf("get property %s: %w", code, err)
	}
	return p, nil
}

// List returns properties matching the optional exact-match filter, ordered
// by property code ascending.
func (ps *PropertyStore) List(filter types.PropertyFilter) ([]types.Property, error) {
	ps.s.mu.RLock()
	defer ps.s.mu.RUnlock()

	var conds []string
	var args []any
	if filter.OwnerCode != "" {
		conds = append(conds, "p.owner_code = ?")
		args = append(args, filter.OwnerCode)
	}
	if filter.PropertyType != "" {
		conds = append(conds, "p.property_type = ?")
		args = append(args, filter.PropertyType)
	}
	if filter.ProvinceCode != "" {
		conds = append(conds, "p.province_code = ?")
		args = append(args, filter.ProvinceCode)
	}
	if filter.OfferType != "" {
		conds = append(conds, "p.offer_type = ?")
		args = append(args, filter.OfferType)
	}

	query := propertySelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY p.property_code"

	rows, err := ps.s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	return collectProperties(rows)
}

// checkReferencesLocked enforces the write-time referential invariants that
// the loosely-typed reference table cannot express as foreign keys.
func (ps *PropertyStore) checkReferencesLocked(p *types.Property) error {
	checks := []struct {
		field      string
		value      string
		recordType types.RecordType
		required   bool
	}{
		{"property_type", p.PropertyType, types.RecordTypePropertyType, true},
		{"build_type", p.BuildType, types.RecordTypeBuildType, false},
		{"unit_of_measure", p.UnitOfMeasure, types.RecordTypeUnitOfMeasure, false},
		{"offer_type", p.OfferType, types.RecordTypeOfferType, false},
		{"province_code", p.ProvinceCode, types.RecordTypeProvince, false},
		{"region_code", p.RegionCode, types.RecordTypeRegion, false},
	}
	for _, c := range checks {
		if c.value == "" {
			if c.required {
				return &types.ValidationError{Field: c.field, Reason: "is required"}
			}
			continue
		}
		_, err := ps.s.reference.resolveLocked(c.recordType, c.value)
		if err != nil {
			if isNoRows(err) || isNotFound(err) {
				return &types.ValidationError{
					Field:  c.field,
					Reason: fmt.Sprintf("code %q does not exist in reference data", c.value),
				}
			}
			return err
		}
	}

	if p.OwnerCode != "" {
		ok, err := ps.s.owners.existsLocked(p.OwnerCode)
		if err != nil {
			return fmt.Errorf("check owner reference: %w", err)
		}
		if !ok {
			return &types.ValidationError{
				Field:  "owner_code",
				Reason: fmt.Sprintf("owner %q does not exist", p.OwnerCode),
			}
		}
	}
	return nil
}

// setHasPhotosLocked keeps the has_photos flag in step with the photo rows.
func (ps *PropertyStore) setHasPhotosLocked(code string, has bool) error {
	_, err := ps.s.db.Exec(
		"UPDATE properties SET has_photos = ? WHERE property_code = ?",
		boolToInt(has), code,
	)
	return err
}

// existsLocked reports whether a property code resolves.
func (ps *PropertyStore) existsLocked(code string) (bool, error) {
	var one int
	err := ps.s.db.QueryRow("SELECT 1 FROM properties WHERE property_code = ?", code).Scan(&one)
	if isNoRows(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(r rowScanner) (*types.Property, error) {
	var p types.Property
	var isCorner, hasPhotos int
	var ownerCode sql.NullString
	var created, updated string

	err := r.Scan(
		&p.PropertyCode, &p.CompanyCode, &p.PropertyType, &p.BuildType,
		&p.YearBuilt, &p.Area, &p.UnitOfMeasure, &p.Facade, &p.Depth,
		&p.Bedrooms, &p.Bathrooms, &isCorner, &p.OfferType,
		&p.ProvinceCode, &p.RegionCode, &p.Address, &hasPhotos,
		&ownerCode, &p.Description, &created, &updated,
		&p.OwnerName,
	)
	if err != nil {
		return nil, err
	}
	p.IsCorner = isCorner != 0
	p.HasPhotos = hasPhotos != 0
	p.OwnerCode = ownerCode.String
	p.CreatedAt = parseTime(created)
	p.UpdatedAt = parseTime(updated)
	return &p, nil
}

func collectProperties(rows *sql.Rows) ([]types.Property, error) {
	var out []types.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullableCode maps an empty code to NULL so an unassigned owner reads back
// as absent rather than as an empty string pretending to be a code.
func nullableCode(code string) any {
	if code == "" {
		return nil
	}
	return code
}
