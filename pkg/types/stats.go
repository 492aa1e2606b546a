package types

// GroupCount is one bucket of a grouped statistic, with the reference name
// resolved when available.
type GroupCount struct {
	Code  string `json:"code"`
	Name  string `json:"name,omitempty"`
	Count int    `json:"count"`
}

// StoreStats summarizes the structured store for reporting.
type StoreStats struct {
	TotalOwners     int `json:"total_owners"`
	TotalProperties int `json:"total_properties"`
	TotalPhotos     int `json:"total_photos"`

	PropertiesByType     []GroupCount `json:"properties_by_type,omitempty"`
	PropertiesByOffer    []GroupCount `json:"properties_by_offer,omitempty"`
	PropertiesByProvince []GroupCount `json:"properties_by_province,omitempty"`
}
