package domain

import "time"

type EventType string

const (
	DishCreated  EventType = "dish.created"
	DishUpdated  EventType = "dish.updated"
	OrderCreated EventType = "order.created"
	OrderUpdated EventType = "order.updated"
	OrderDeleted EventType = "order.deleted"
)

// Event announces a completed mutation. Data holds the record as it was after
// the change, or just before removal for deletions.
type Event struct {
	Type     EventType `json:"type"`
	RecordID string    `json:"record_id"`
	At       time.Time `json:"at"`
	Data     any       `json:"data"`
}

func NewEvent(typ EventType, id string, data any) Event {
	return Event{Type: typ, RecordID: id, At: time.Now().UTC(), Data: data}
}
