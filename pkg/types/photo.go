package types

import "time"

// Photo is the metadata row for one stored image. The binary lives at
// StoragePath/FileName outside the structured store; the row never embeds
// image bytes. When the deployment's photos table has no surrogate key,
// ID is zero and identity is (PropertyCode, FileName).
type Photo struct {
	ID           int64     `json:"id,omitempty"`
	PropertyCode string    `json:"property_code"`
	StoragePath  string    `json:"storage_path"`
	FileName     string    `json:"file_name"`
	Extension    string    `json:"extension,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// FileStore is the byte-storage capability photos are written through. It
// may be a different physical tier than the structured store.
type FileStore interface {
	Write(path string, data []byte) error
	Delete(path string) error
	Exists(path string) bool
}
