package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "STUDY_SESSION_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a ready-made Event implementation for simple payloads.
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

const TypeStudySessionCreated = "STUDY_SESSION_CREATED"

// NewStudySessionCreated builds the audit event emitted after a study
// session has been generated and stored.
func NewStudySessionCreated(sessionId, sessionType, projectId string) BaseEvent {
	return BaseEvent{
		Type: TypeStudySessionCreated,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"type":       sessionType,
			"project_id": projectId,
		},
		OccurredAt: time.Now(),
	}
}
