package events

import "time"

// EventType identifies a domain event.
type EventType string

const (
	TicketMessageAdded  EventType = "ticket_message_added"
	TicketStatusChanged EventType = "ticket_status_changed"
	RequestCancelled    EventType = "request_cancelled"
	RoomsAvailability   EventType = "rooms_availability_changed"
)

// Event is a published domain change.
type Event struct {
	Type        EventType
	AggregateID string
	Payload     map[string]interface{}
	OccurredAt  time.Time
}

// New builds an event stamped with the current time.
func New(eventType EventType, aggregateID string, payload map[string]interface{}) Event {
	return Event{Type: eventType, AggregateID: aggregateID, Payload: payload, OccurredAt: time.Now().UTC()}
}
