package sqlite

import (
	"fmt"

	"github.com/estatedesk/estatedesk/pkg/types"
)

// Statistics summarizes the store: entity totals plus property counts
// grouped by type, offer, and province with reference names resolved.
func (s *Store) Statistics() (*types.StoreStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &types.StoreStats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM owners", &stats.TotalOwners},
		{"SELECT COUNT(*) FROM properties", &stats.TotalProperties},
		{"SELECT COUNT(*) FROM photos", &stats.TotalPhotos},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("count: %w", err)
		}
	}

	groups := []struct {
		column     string
		recordType types.RecordType
		dest       *[]types.GroupCount
	}{
		{"property_type", types.RecordTypePropertyType, &stats.PropertiesByType},
		{"offer_type", types.RecordTypeOfferType, &stats.PropertiesByOffer},
		{"province_code", types.RecordTypeProvince, &stats.PropertiesByProvince},
	}
	for _, g := range groups {
		counts, err := s.groupCountLocked(g.column, g.recordType)
		if err != nil {
			return nil, err
		}
		*g.dest = counts
	}

	return stats, nil
}

// groupCountLocked counts properties per value of one classification
// column, joining the reference table for display names.
func (s *Store) groupCountLocked(column string, rt types.RecordType) ([]types.GroupCount, error) {
	query := fmt.Sprintf(
		`SELECT p.%[1]s, IFNULL(m.name, ''), COUNT(*) AS n
           FROM properties p
           LEFT JOIN reference_codes m ON p.%[1]s = m.code AND m.record_type = ?
          WHERE p.%[1]s != ''
          GROUP BY p.%[1]s
          ORDER BY n DESC, p.%[1]s`,
		column,
	)
	rows, err := s.db.Query(query, string(rt))
	if err != nil {
		return nil, fmt.Errorf("group by %s: %w", column, err)
	}
	defer rows.Close()

	var out []types.GroupCount
	for rows.Next() {
		var gc types.GroupCount
		if err := rows.Scan(&gc.Code, &gc.Name, &gc.Count); err != nil {
			return nil, fmt.Errorf("scan group count: %w", err)
		}
		out = append(out, gc)
	}
	return out, rows.Err()
}
