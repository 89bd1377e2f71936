package domain

import "fmt"

// ProgressStatus - статус прогресса задачи
type ProgressStatus string

const (
	ProgressNotStarted       ProgressStatus = "NOT_STARTED"
	ProgressInProgress       ProgressStatus = "IN_PROGRESS"
	ProgressWaitingForReview ProgressStatus = "WAITING_FOR_REVIEW"
	ProgressCompleted        ProgressStatus = "COMPLETED"
)

// ParseProgressStatus создает статус из строки (единственная точка входа для внешних строк)
func ParseProgressStatus(value string) (ProgressStatus, error) {
	switch ProgressStatus(value) {
	case ProgressNotStarted, ProgressInProgress, ProgressWaitingForReview, ProgressCompleted:
		return ProgressStatus(value), nil
	default:
		return "", NewValidationError(fmt.Sprintf(
			"invalid progress status %q: must be one of NOT_STARTED, IN_PROGRESS, WAITING_FOR_REVIEW, COMPLETED", value))
	}
}

func (s ProgressStatus) String() string {
	return string(s)
}

// CanTransitionTo проверяет допустимость перехода статуса
func (s ProgressStatus) CanTransitionTo(target ProgressStatus) bool {
	// Переход в то же состояние всегда допустим
	if s == target {
		return true
	}

	switch s {
	case ProgressNotStarted:
		return target == ProgressInProgress
	case ProgressInProgress:
		return target == ProgressWaitingForReview
	case ProgressWaitingForReview:
		// С ревью можно вернуться в работу либо завершить
		return target == ProgressInProgress || target == ProgressCompleted
	case ProgressCompleted:
		// Завершенная задача не меняет статус
		return false
	}

	return false
}
