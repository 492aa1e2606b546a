package types

import "time"

// OwnerCodeLength is the fixed length of generated owner codes.
const OwnerCodeLength = 4

// Owner is a property owner. The owner code is generated on creation and
// immutable afterwards. Properties hold a non-owning reference to it.
type Owner struct {
	OwnerCode string    `json:"owner_code" validate:"omitempty,len=4,alphanum"`
	Name      string    `json:"name" validate:"required"`
	Phone     string    `json:"phone"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
