package sqlite

import (
	"fmt"

	"github.com/estatedesk/estatedesk/pkg/types"
)

// OwnerStore manages owner records. Deleting an owner that properties still
// reference is blocked; a property without an owner is a valid flagged
// state, a dangling owner reference is not.
type OwnerStore struct {
	s *Store
}

// Create validates and persists a new owner, returning the generated
// four-character owner code.
func (os *OwnerStore) Create(o types.Owner) (string, error) {
	o.OwnerCode = ""
	if err := os.s.validateStruct(&o); err != nil {
		return "", err
	}

	os.s.mu.Lock()
	defer os.s.mu.Unlock()

	code, err := os.s.generateOwnerCodeLocked()
	if err != nil {
		return "", err
	}

	now := nowString()
	_, err = os.s.db.Exec(
		`INSERT INTO owners (owner_code, name, phone, note, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		code, o.Name, o.Phone, o.Note, now, now,
	)
	if err != nil {
		// The generator checked the code under this same lock, so a
		// collision here means the row appeared through another path.
		if isUniqueViolation(err) {
			return "", &types.DuplicateCodeError{Code: code}
		}
		return "", fmt.Errorf("insert owner: %w", err)
	}

	os.s.log.WithField("owner_code", code).Info("owner created")
	os.s.record(types.ActionCreateOwner, code, o.Name)
	return code, nil
}

// Update replaces the mutable fields of an existing owner. The owner code
// itself never changes.
func (os *OwnerStore) Update(code string, o types.Owner) error {
	o.OwnerCode = code
	if err := os.s.validateStruct(&o); err != nil {
		return err
	}

	os.s.mu.Lock()
	defer os.s.mu.Unlock()

	res, err := os.s.db.Exec(
		`UPDATE owners SET name = ?, phone = ?, note = ?, updated_at = ?
         WHERE owner_code = ?`,
		o.Name, o.Phone, o.Note, nowString(), code,
	)
	if err != nil {
		return fmt.Errorf("update owner: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update owner: %w", err)
	}
	if n == 0 {
		return &types.NotFoundError{Entity: "owner", Code: code}
	}

	os.s.record(types.ActionUpdateOwner, code, o.Name)
	return nil
}

// Delete removes an owner. Fails with a constraint error while any property
// references the code; callers reassign or delete those properties first.
func (os *OwnerStore) Delete(code string) error {
	os.s.mu.Lock()
	defer os.s.mu.Unlock()

	var refs int
	err := os.s.db.QueryRow(
		"SELECT COUNT(*) FROM properties WHERE owner_code = ?", code,
	).Scan(&refs)
	if err != nil {
		return fmt.Errorf("count owner references: %w", err)
	}
	if refs > 0 {
		return &types.ConstraintError{
			Entity: "owner",
			Code:   code,
			Reason: fmt.Sprintf("%d properties still reference this owner", refs),
		}
	}

	res, err := os.s.db.Exec("DELETE FROM owners WHERE owner_code = ?", code)
	if err != nil {
		return fmt.Errorf("delete owner: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete owner: %w", err)
	}
	if n == 0 {
		return &types.NotFoundError{Entity: "owner", Code: code}
	}

	os.s.log.WithField("owner_code", code).Info("owner deleted")
	os.s.record(types.ActionDeleteOwner, code, "")
	return nil
}

// Get retrieves one owner by code.
func (os *OwnerStore) Get(code string) (*types.Owner, error) {
	os.s.mu.RLock()
	defer os.s.mu.RUnlock()

	row := os.s.db.QueryRow(
		`SELECT owner_code, name, phone, note, created_at, updated_at
         FROM owners WHERE owner_code = ?`, code,
	)

	var o types.Owner
	var created, updated string
	err := row.Scan(&o.OwnerCode, &o.Name, &o.Phone, &o.Note, &created, &updated)
	if isNoRows(err) {
		return nil, &types.NotFoundError{Entity: "owner", Code: code}
	}
	if err != nil {
		return nil, fmt.Errorf("get owner %s: %w", code, err)
	}
	o.CreatedAt = parseTime(created)
	o.UpdatedAt = parseTime(updated)
	return &o, nil
}

// List returns every owner ordered by name.
func (os *OwnerStore) List() ([]types.Owner, error) {
	os.s.mu.RLock()
	defer os.s.mu.RUnlock()

	rows, err := os.s.db.Query(
		`SELECT owner_code, name, phone, note, created_at, updated_at
         FROM owners ORDER BY name, owner_code`,
	)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	defer rows.Close()

	var owners []types.Owner
	for rows.Next() {
		var o types.Owner
		var created, updated string
		if err := rows.Scan(&o.OwnerCode, &o.Name, &o.Phone, &o.Note, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}
		o.CreatedAt = parseTime(created)
		o.UpdatedAt = parseTime(updated)
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

// existsLocked reports whether an owner code resolves. Caller holds either
// lock half.
func (os *OwnerStore) existsLocked(code string) (bool, error) {
	var one int
	err := os.s.db.QueryRow("SELECT 1 FROM owners WHERE owner_code = ?", code).Scan(&one)
	if isNoRows(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
