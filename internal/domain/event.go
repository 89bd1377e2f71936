package domain

import "time"

// Event - доменное событие
// Все события идентифицируются по eventID и несут время возникновения
type Event interface {
	EventID() string
	EventName() string
	OccurredOn() time.Time
}

type baseEvent struct {
	eventID    string
	occurredOn time.Time
}

func newBaseEvent() baseEvent {
	return baseEvent{
		eventID:    NewID(),
		occurredOn: time.Now(),
	}
}

func (e baseEvent) EventID() string {
	return e.eventID
}

func (e baseEvent) OccurredOn() time.Time {
	return e.occurredOn
}
