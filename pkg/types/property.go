package types

import "time"

// PropertyCodeLength is the fixed length of generated property codes:
// a four-character company prefix plus a four-character random suffix.
const PropertyCodeLength = 8

// Property is the central record of the engine: one real-estate
// specification. The property code is generated on creation; neither it nor
// the company code can change afterwards. Classification fields must resolve
// against the reference table of the matching record type at write time.
type Property struct {
	PropertyCode  string  `json:"property_code"`
	CompanyCode   string  `json:"company_code"`
	PropertyType  string  `json:"property_type" validate:"required"`
	BuildType     string  `json:"build_type,omitempty"`
	YearBuilt     int     `json:"year_built,omitempty" validate:"omitempty,gte=1800,lte=2100"`
	Area          float64 `json:"area" validate:"required,gt=0"`
	UnitOfMeasure string  `json:"unit_of_measure,omitempty"`
	Facade        float64 `json:"facade,omitempty" validate:"gte=0"`
	Depth         float64 `json:"depth,omitempty" validate:"gte=0"`
	Bedrooms      int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms     int     `json:"bathrooms" validate:"gte=0"`
	IsCorner      bool    `json:"is_corner"`
	OfferType     string  `json:"offer_type,omitempty"`
	ProvinceCode  string  `json:"province_code,omitempty"`
	RegionCode    string  `json:"region_code,omitempty"`
	Address       string  `json:"address" validate:"required"`
	HasPhotos     bool    `json:"has_photos"`
	OwnerCode     string  `json:"owner_code,omitempty" validate:"omitempty,len=4,alphanum"`
	Description   string  `json:"description,omitempty"`

	// OwnerName is resolved from the owners table on read; it is ignored
	// on writes.
	OwnerName string `json:"owner_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PropertyFilter narrows List results by exact-match fields. The zero value
// matches everything. Anything richer goes through the search engine.
type PropertyFilter struct {
	OwnerCode    string
	PropertyType string
	ProvinceCode string
	OfferType    string
}
