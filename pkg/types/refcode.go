package types

import "time"

// RecordType discriminates the taxonomies sharing the reference table.
// The two-digit wire values match the discriminators the store was seeded
// with historically; callers should only ever use the constants.
type RecordType string

const (
	RecordTypeProvince      RecordType = "01"
	RecordTypeRegion        RecordType = "02"
	RecordTypePropertyType  RecordType = "03"
	RecordTypeBuildType     RecordType = "04"
	RecordTypeUnitOfMeasure RecordType = "05"
	RecordTypeOfferType     RecordType = "06"
)

// RecordTypes lists every known discriminator for enumeration.
var RecordTypes = []RecordType{
	RecordTypeProvince,
	RecordTypeRegion,
	RecordTypePropertyType,
	RecordTypeBuildType,
	RecordTypeUnitOfMeasure,
	RecordTypeOfferType,
}

var validRecordTypes = map[RecordType]bool{
	RecordTypeProvince:      true,
	RecordTypeRegion:        true,
	RecordTypePropertyType:  true,
	RecordTypeBuildType:     true,
	RecordTypeUnitOfMeasure: true,
	RecordTypeOfferType:     true,
}

// Valid reports whether rt is a recognized discriminator.
func (rt RecordType) Valid() bool {
	return validRecordTypes[rt]
}

// ReferenceCode is one classification value in the shared taxonomy table.
// Rows are created at seed time or by administrative import and are keyed
// by (record_type, code).
type ReferenceCode struct {
	RecordType  RecordType `json:"record_type"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
