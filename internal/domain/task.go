package domain

// Ограничения на длину названия задачи
const (
	taskTitleMinLen = 1
	taskTitleMaxLen = 100
)

// Task - задача участника
// Статус прогресса меняет только владелец задачи
type Task struct {
	id             string
	title          string
	progressStatus ProgressStatus
	ownerID        string
	bus            *EventBus
}

// NewTask создает задачу в статусе NOT_STARTED и публикует TaskCreatedEvent
func NewTask(title, ownerID string, bus *EventBus) (*Task, error) {
	if err := validateTaskTitle(title); err != nil {
		return nil, err
	}

	task := &Task{
		id:             NewID(),
		title:          title,
		progressStatus: ProgressNotStarted,
		ownerID:        ownerID,
		bus:            bus,
	}

	bus.Publish(NewTaskCreatedEvent(task.id, task.title, task.ownerID, task.progressStatus))

	return task, nil
}

// ReconstructTask восстанавливает задачу из сохраненных данных
// без валидации и без публикации событий
func ReconstructTask(id, title, ownerID string, status ProgressStatus, bus *EventBus) *Task {
	return &Task{
		id:             id,
		title:          title,
		progressStatus: status,
		ownerID:        ownerID,
		bus:            bus,
	}
}

func (t *Task) ID() string {
	return t.id
}

func (t *Task) Title() string {
	return t.title
}

func (t *Task) ProgressStatus() ProgressStatus {
	return t.progressStatus
}

func (t *Task) OwnerID() string {
	return t.ownerID
}

// Edit заменяет название задачи с повторной валидацией
func (t *Task) Edit(title string) error {
	if err := validateTaskTitle(title); err != nil {
		return err
	}

	t.title = title
	return nil
}

// ChangeProgressStatus меняет статус прогресса
// Проверка владельца выполняется до проверки перехода
func (t *Task) ChangeProgressStatus(newStatus ProgressStatus, requesterID string) error {
	if t.ownerID != requesterID {
		return ErrNotOwner
	}

	if !t.progressStatus.CanTransitionTo(newStatus) {
		return NewInvalidTransitionError("progress status", t.progressStatus.String(), newStatus.String())
	}

	previous := t.progressStatus
	t.progressStatus = newStatus

	t.bus.Publish(NewTaskProgressChangedEvent(t.id, t.ownerID, previous, newStatus))

	return nil
}

func validateTaskTitle(title string) error {
	if len(title) < taskTitleMinLen {
		return NewValidationError("task title must not be empty")
	}
	if len(title) > taskTitleMaxLen {
		return NewValidationError("task title must be 100 characters or less")
	}
	return nil
}
