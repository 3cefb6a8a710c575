package events

import "time"

// Event defines the contract for all cross-service events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "PROFILE_UPDATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation the typed constructors build on.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes and the NATS subjects they publish on. The publisher
// derives the subject from the type, so subscribers must use the matching
// Subject constant.
const (
	TypeProfileUpdated    = "PROFILE_UPDATED"
	SubjectProfileUpdated = "events.PROFILE_UPDATED"
)

// NewProfileUpdated marks a user profile change. Subscribers use it to drop
// any cached or snapshotted copy of that user's restrictions.
func NewProfileUpdated(userID string) Event {
	return BaseEvent{
		Type: TypeProfileUpdated,
		Data: map[string]interface{}{
			"user_id": userID,
		},
		OccurredAt: time.Now(),
	}
}

// UserID extracts the user id from a profile event payload, empty when the
// payload is malformed.
func UserID(e Event) string {
	userID, _ := e.Payload()["user_id"].(string)
	return userID
}
