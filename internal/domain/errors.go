package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrValidation - некорректное значение value object
	ErrValidation = &DomainError{
		Code:    "VALIDATION",
		Message: "invalid value",
	}

	// ErrInvalidTransition - недопустимый переход статуса
	ErrInvalidTransition = &DomainError{
		Code:    "INVALID_TRANSITION",
		Message: "status transition is not allowed",
	}

	// ErrNotMember - участник не состоит в команде
	ErrNotMember = &DomainError{
		Code:    "NOT_MEMBER",
		Message: "member does not belong to this team",
	}

	// ErrDuplicateMember - участник уже состоит в команде
	ErrDuplicateMember = &DomainError{
		Code:    "DUPLICATE_MEMBER",
		Message: "member already belongs to this team",
	}

	// ErrTeamSizeExceeded - превышен размер команды
	ErrTeamSizeExceeded = &DomainError{
		Code:    "TEAM_SIZE_EXCEEDED",
		Message: "team size must be 4 or less",
	}

	// ErrMemberNotJoinable - участник не может состоять в команде
	ErrMemberNotJoinable = &DomainError{
		Code:    "MEMBER_NOT_JOINABLE",
		Message: "member cannot join a team in the current enrollment status",
	}

	// ErrNotOwner - задачу может менять только владелец
	ErrNotOwner = &DomainError{
		Code:    "NOT_OWNER",
		Message: "only the task owner can change its progress",
	}

	// ErrTeamExists - команда уже существует
	ErrTeamExists = &DomainError{
		Code:    "TEAM_EXISTS",
		Message: "team name already exists",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrSameTeam - нельзя объединить команду с самой собой
	ErrSameTeam = &DomainError{
		Code:    "SAME_TEAM",
		Message: "source and target teams are the same",
	}

	// ErrEmptySource - в исходной команде нет участников
	ErrEmptySource = &DomainError{
		Code:    "EMPTY_SOURCE",
		Message: "source team has no members",
	}

	// ErrMergeSize - после объединения команда превысит лимит
	ErrMergeSize = &DomainError{
		Code:    "MERGE_SIZE",
		Message: "merged team would exceed the size limit",
	}

	// ErrSplitSize - команда не подходит для разделения
	ErrSplitSize = &DomainError{
		Code:    "SPLIT_SIZE",
		Message: "team must have exactly 4 members to be split",
	}
)

// NewValidationError создает ошибку VALIDATION с конкретным сообщением
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION",
		Message: message,
	}
}

// NewInvalidTransitionError создает ошибку INVALID_TRANSITION с деталями перехода
func NewInvalidTransitionError(kind, from, to string) *DomainError {
	return &DomainError{
		Code:    "INVALID_TRANSITION",
		Message: fmt.Sprintf("cannot change %s from %s to %s", kind, from, to),
	}
}

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}
