package types

import "time"

// Activity action types recorded by the stores.
const (
	ActionCreateOwner    = "create_owner"
	ActionUpdateOwner    = "update_owner"
	ActionDeleteOwner    = "delete_owner"
	ActionCreateProperty = "create_property"
	ActionUpdateProperty = "update_property"
	ActionDeleteProperty = "delete_property"
	ActionAddPhoto       = "add_photo"
	ActionDeletePhoto    = "delete_photo"
	ActionUpsertRefCode  = "upsert_reference"
	ActionDeleteRefCode  = "delete_reference"
	ActionBackup         = "backup"
	ActionRestore        = "restore"
)

// ActivityRecord is one append-only entry in the activity log.
type ActivityRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	ActionType string    `json:"action_type"`
	EntityCode string    `json:"entity_code,omitempty"`
	Actor      string    `json:"actor,omitempty"`
	Detail     string    `json:"detail,omitempty"`
}

// ActivityStats groups activity counts by action type and by calendar day.
type ActivityStats struct {
	Total    int            `json:"total"`
	ByAction map[string]int `json:"by_action"`
	ByDay    map[string]int `json:"by_day"`
}

// ActivityRecorder is the injected collaborator stores report mutations to.
// Recording is best-effort: implementations must never fail the business
// operation that triggered them.
type ActivityRecorder interface {
	Record(actionType, entityCode, detail string)
}

// NopRecorder discards every record. Used in tests and wherever activity
// tracking is switched off.
type NopRecorder struct{}

// Record implements ActivityRecorder.
func (NopRecorder) Record(actionType, entityCode, detail string) {}
