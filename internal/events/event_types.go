package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventContactCreated EventType = "contact_created"
	EventContactUpdated EventType = "contact_updated"
	EventContactDeleted EventType = "contact_deleted"
)

// Actor identifies the account that caused an event; empty on public routes.
type Actor struct {
	AccountID string `json:"account_id,omitempty"`
	Username  string `json:"username,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ContactID string      `json:"contact_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ContactCreatedPayload payload.
type ContactCreatedPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContactUpdatedPayload payload.
type ContactUpdatedPayload struct {
	Fields []string `json:"fields"`
}

// ContactDeletedPayload payload.
type ContactDeletedPayload struct{}
