package sqlite

import (
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/estatedesk/estatedesk/pkg/types"
)

// ReferenceStore serves the shared taxonomy table. Read-mostly: every
// property write resolves several codes against it, so Resolve sits behind
// a short-lived in-process cache. Upsert and Delete exist for
// administrative import and carry no protection beyond the store-wide lock.
type ReferenceStore struct {
	s *Store
}

// ListByType returns the codes of one taxonomy ordered by name, the order
// selection lists are displayed in.
func (rs *ReferenceStore) ListByType(rt types.RecordType) ([]types.ReferenceCode, error) {
	if !rt.Valid() {
		return nil, &types.ValidationError{Field: "record_type", Reason: fmt.Sprintf("unknown discriminator %q", rt)}
	}

	rs.s.mu.RLock()
	defer rs.s.mu.RUnlock()

	rows, err := rs.s.db.Query(
		`SELECT record_type, code, name, description, created_at
         FROM reference_codes WHERE record_type = ? ORDER BY name, code`,
		string(rt),
	)
	if err != nil {
		return nil, fmt.Errorf("list reference codes: %w", err)
	}
	defer rows.Close()

	var out []types.ReferenceCode
	for rows.Next() {
		var rc types.ReferenceCode
		var recordType, created string
		if err := rows.Scan(&recordType, &rc.Code, &rc.Name, &rc.Description, &created); err != nil {
			return nil, fmt.Errorf("scan reference code: %w", err)
		}
		rc.RecordType = types.RecordType(recordType)
		rc.CreatedAt = parseTime(created)
		out = append(out, rc)
	}
	return out, rows.Err()
}

// Resolve returns the display name for a (record_type, code) pair.
func (rs *ReferenceStore) Resolve(rt types.RecordType, code string) (string, error) {
	rs.s.mu.RLock()
	defer rs.s.mu.RUnlock()
	return rs.resolveLocked(rt, code)
}

// resolveLocked is Resolve without lock acquisition, for callers already
// holding either half of the store lock.
func (rs *ReferenceStore) resolveLocked(rt types.RecordType, code string) (string, error) {
	key := cacheKey(rt, code)
	if name, ok := rs.s.refCache.Get(key); ok {
		return name.(string), nil
	}

	var name string
	err := rs.s.db.QueryRow(
		"SELECT name FROM reference_codes WHERE record_type = ? AND code = ?",
		string(rt), code,
	).Scan(&name)
	if isNoRows(err) {
		return "", &types.NotFoundError{Entity: "reference code", Code: code}
	}
	if err != nil {
		return "", fmt.Errorf("resolve %s/%s: %w", rt, code, err)
	}

	rs.s.refCache.Set(key, name, cache.DefaultExpiration)
	return name, nil
}

// Upsert inserts or replaces one taxonomy row. Administrative operation.
func (rs *ReferenceStore) Upsert(rc types.ReferenceCode) error {
	if !rc.RecordType.Valid() {
		return &types.ValidationError{Field: "record_type", Reason: fmt.Sprintf("unknown discriminator %q", rc.RecordType)}
	}
	if rc.Code == "" {
		return &types.ValidationError{Field: "code", Reason: "is required"}
	}
	if rc.Name == "" {
		return &types.ValidationError{Field: "name", Reason: "is required"}
	}

	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()

	_, err := rs.s.db.Exec(
		`INSERT INTO reference_codes (record_type, code, name, description, created_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(record_type, code) DO UPDATE SET name = excluded.name, description = excluded.description`,
		string(rc.RecordType), rc.Code, rc.Name, rc.Description,
		time.Now().UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("upsert reference code: %w", err)
	}

	rs.s.refCache.Delete(cacheKey(rc.RecordType, rc.Code))
	rs.s.record(types.ActionUpsertRefCode, rc.Code, string(rc.RecordType))
	return nil
}

// Delete removes one taxonomy row. Administrative operation; dependent
// property rows are left with a code that no longer resolves, which is why
// this is not on the day-to-day path.
func (rs *ReferenceStore) Delete(rt types.RecordType, code string) error {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()

	res, err := rs.s.db.Exec(
		"DELETE FROM reference_codes WHERE record_type = ? AND code = ?",
		string(rt), code,
	)
	if err != nil {
		return fmt.Errorf("delete reference code: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete reference code: %w", err)
	}
	if n == 0 {
		return &types.NotFoundError{Entity: "reference code", Code: code}
	}

	rs.s.refCache.Delete(cacheKey(rt, code))
	rs.s.record(types.ActionDeleteRefCode, code, string(rt))
	return nil
}

func cacheKey(rt types.RecordType, code string) string {
	return string(rt) + ":" + code
}
