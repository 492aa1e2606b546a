package sqlite

import (
	"fmt"
	"strings"

	"github.com/estatedesk/estatedesk/pkg/types"
)

// SearchEngine translates a sparse criteria structure into one conjunctive
// query over properties joined with owners. Every supplied criterion
// narrows the result set; an empty criteria set returns everything. Results
// are ordered by property code so identical inputs always produce identical
// output.
type SearchEngine struct {
	s *Store
}

// Search executes the query built from criteria.
func (se *SearchEngine) Search(c types.SearchCriteria) ([]types.Property, error) {
	se.s.mu.RLock()
	defer se.s.mu.RUnlock()

	query, args := buildSearchQuery(c)
	rows, err := se.s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("search properties: %w", err)
	}
	defer rows.Close()

	return collectProperties(rows)
}

// buildSearchQuery composes the WHERE clause. Only non-zero criteria
// contribute a predicate, all predicates are ANDed, and a one-sided range
// leaves the other bound unconstrained.
func buildSearchQuery(c types.SearchCriteria) (string, []any) {
	var conds []string
	var args []any

	exact := []struct {
		column string
		value  string
	}{
		{"p.property_type", c.PropertyType},
		{"p.build_type", c.BuildType},
		{"p.offer_type", c.OfferType},
		{"p.province_code", c.ProvinceCode},
		{"p.region_code", c.RegionCode},
	}
	for _, e := range exact {
		if e.value != "" {
			conds = append(conds, e.column+" = ?")
			args = append(args, e.value)
		}
	}

	if c.IsCorner != nil {
		conds = append(conds, "p.is_corner = ?")
		args = append(args, boolToInt(*c.IsCorner))
	}

	if c.MinArea != nil {
		conds = append(conds, "p.area >= ?")
		args = append(args, *c.MinArea)
	}
	if c.MaxArea != nil {
		conds = append(conds, "p.area <= ?")
		args = append(args, *c.MaxArea)
	}
	if c.MinBedrooms != nil {
		conds = append(conds, "p.bedrooms >= ?")
		args = append(args, *c.MinBedrooms)
	}
	if c.MaxBedrooms != nil {
		conds = append(conds, "p.bedrooms <= ?")
		args = append(args, *c.MaxBedrooms)
	}
	if c.MinBathrooms != nil {
		conds = append(conds, "p.bathrooms >= ?")
		args = append(args, *c.MinBathrooms)
	}
	if c.MaxBathrooms != nil {
		conds = append(conds, "p.bathrooms <= ?")
		args = append(args, *c.MaxBathrooms)
	}
	if c.YearFrom != nil {
		conds = append(conds, "p.year_built >= ?")
		args = append(args, *c.YearFrom)
	}
	if c.YearTo != nil {
		conds = append(conds, "p.year_built <= ?")
		args = append(args, *c.YearTo)
	}

	if c.OwnerName != "" {
		conds = append(conds, "o.name LIKE ?")
		args = append(args, "%"+c.OwnerName+"%")
	}

	if c.FreeText != "" {
		conds = append(conds,
			"(p.address LIKE ? OR p.description LIKE ? OR o.name LIKE ? OR p.property_code LIKE ?)")
		needle := "%" + c.FreeText + "%"
		args = append(args, needle, needle, needle, needle)
	}

	query := propertySelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY p.property_code"
	return query, args
}
