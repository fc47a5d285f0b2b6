package model

import "time"

// Event represents a scheduled night at the club.  Drink sales are
// always recorded against an event, and deleting an event removes
// every batch and line item that belongs to it.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the event (e.g. "Electro Night").
//  Date      – calendar date in YYYY-MM-DD form.  Sales may only be
//              recorded while this equals the current date.
//  StartTime – opening time in HH:MM form.
//  Capacity  – venue capacity.  Informational only; nothing enforces
//              "quantity sold <= capacity".
//  Status    – current state of the event (active, inactive).
//  CreatedAt – creation timestamp.
type Event struct {
	ID        uint64    `json:"id"`         // events.id
	Name      string    `json:"name"`       // events.name
	Date      string    `json:"date"`       // events.event_date
	StartTime string    `json:"start_time"` // events.start_time
	Capacity  uint32    `json:"capacity"`   // events.capacity
	Status    string    `json:"status"`     // events.status
	CreatedAt time.Time `json:"created_at"` // events.created_at
}

// Event status values accepted by the store.
const (
	EventStatusActive   = "active"
	EventStatusInactive = "inactive"
)
