package domain

const (
	TaskCreatedEventName         = "TaskCreatedEvent"
	TaskProgressChangedEventName = "TaskProgressChangedEvent"
)

// TaskCreatedEvent - создана новая задача
type TaskCreatedEvent struct {
	baseEvent
	TaskID         string
	Title          string
	OwnerID        string
	ProgressStatus ProgressStatus
}

func NewTaskCreatedEvent(taskID, title, ownerID string, status ProgressStatus) TaskCreatedEvent {
	return TaskCreatedEvent{
		baseEvent:      newBaseEvent(),
		TaskID:         taskID,
		Title:          title,
		OwnerID:        ownerID,
		ProgressStatus: status,
	}
}

func (e TaskCreatedEvent) EventName() string { return TaskCreatedEventName }

// TaskProgressChangedEvent - изменен статус прогресса задачи
type TaskProgressChangedEvent struct {
	baseEvent
	TaskID         string
	OwnerID        string
	PreviousStatus ProgressStatus
	NewStatus      ProgressStatus
}

func NewTaskProgressChangedEvent(taskID, ownerID string, previous, next ProgressStatus) TaskProgressChangedEvent {
	return TaskProgressChangedEvent{
		baseEvent:      newBaseEvent(),
		TaskID:         taskID,
		OwnerID:        ownerID,
		PreviousStatus: previous,
		NewStatus:      next,
	}
}

func (e TaskProgressChangedEvent) EventName() string { return TaskProgressChangedEventName }
