package entity

import "time"

// AdminActivity is an audit log row describing an admin or seller action on a
// named resource.
type AdminActivity struct {
	ID           int64
	AdminName    string
	ActionType   string // added, edited or deleted.
	ResourceType string
	ResourceName string
	Timestamp    time.Time
}

// Activity log action types. Archive-family verbs map onto the closest base
// verb and carry the precise verb in the description instead.
const (
	ActionAdded   = "added"
	ActionEdited  = "edited"
	ActionDeleted = "deleted"
)
