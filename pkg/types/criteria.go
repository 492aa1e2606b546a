package types

// SearchCriteria is a sparse, partially-filled filter structure. Every
// supplied (non-zero) criterion narrows the result; composition is logical
// AND. Range bounds are pointers so a missing bound is unconstrained, and
// the zero value matches every record.
type SearchCriteria struct {
	// Exact-match classification filters.
	PropertyType string `json:"property_type,omitempty"`
	BuildType    string `json:"build_type,omitempty"`
	OfferType    string `json:"offer_type,omitempty"`
	ProvinceCode string `json:"province_code,omitempty"`
	RegionCode   string `json:"region_code,omitempty"`

	// IsCorner filters on the corner flag when non-nil.
	IsCorner *bool `json:"is_corner,omitempty"`

	// OwnerName matches as a case-insensitive substring of the owner name.
	OwnerName string `json:"owner_name,omitempty"`

	// FreeText matches across address, description, owner name, and
	// property code.
	FreeText string `json:"free_text,omitempty"`

	// Range filters; nil bounds are unconstrained.
	MinArea      *float64 `json:"min_area,omitempty"`
	MaxArea      *float64 `json:"max_area,omitempty"`
	MinBedrooms  *int     `json:"min_bedrooms,omitempty"`
	MaxBedrooms  *int     `json:"max_bedrooms,omitempty"`
	MinBathrooms *int     `json:"min_bathrooms,omitempty"`
	MaxBathrooms *int     `json:"max_bathrooms,omitempty"`
	YearFrom     *int     `json:"year_from,omitempty"`
	YearTo       *int     `json:"year_to,omitempty"`
}

// IsEmpty reports whether no criterion is set, in which case search returns
// every record.
func (c SearchCriteria) IsEmpty() bool {
	return c == SearchCriteria{}
}
