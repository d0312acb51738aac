package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered      EventType = "user_registered"
	EventClientCreated       EventType = "client_created"
	EventClientUpdated       EventType = "client_updated"
	EventClientDeleted       EventType = "client_deleted"
	EventSubscriptionCreated EventType = "subscription_created"
	EventSubscriptionUpdated EventType = "subscription_updated"
	EventSubscriptionDeleted EventType = "subscription_deleted"
	EventAddressCreated      EventType = "address_created"
	EventAddressUpdated      EventType = "address_updated"
	EventAddressDeleted      EventType = "address_deleted"
	EventBarberCreated       EventType = "barber_created"
	EventBarberUpdated       EventType = "barber_updated"
	EventBarberDeleted       EventType = "barber_deleted"
)

// AllEventTypes lists every type a subscriber can register for.
var AllEventTypes = []EventType{
	EventUserRegistered,
	EventClientCreated, EventClientUpdated, EventClientDeleted,
	EventSubscriptionCreated, EventSubscriptionUpdated, EventSubscriptionDeleted,
	EventAddressCreated, EventAddressUpdated, EventAddressDeleted,
	EventBarberCreated, EventBarberUpdated, EventBarberDeleted,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	Resource   string            `json:"resource"`
	ResourceID int64             `json:"resource_id"`
	Actor      string            `json:"actor,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
	Fields     map[string]string `json:"fields,omitempty"`
}
