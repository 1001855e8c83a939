package events

import "time"

const (
	UserRegistered  = "USER_REGISTERED"
	UserLogin       = "USER_LOGIN"
	NoteCreated     = "NOTE_CREATED"
	NoteUpdated     = "NOTE_UPDATED"
	NoteDeleted     = "NOTE_DELETED"
	CustomerDeleted = "CUSTOMER_DELETED"
)

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
