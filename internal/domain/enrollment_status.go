package domain

import "fmt"

// EnrollmentStatus - статус участия члена команды
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentInactive  EnrollmentStatus = "INACTIVE"
	EnrollmentWithdrawn EnrollmentStatus = "WITHDRAWN"
)

// ParseEnrollmentStatus создает статус из строки (единственная точка входа для внешних строк)
func ParseEnrollmentStatus(value string) (EnrollmentStatus, error) {
	switch EnrollmentStatus(value) {
	case EnrollmentActive, EnrollmentInactive, EnrollmentWithdrawn:
		return EnrollmentStatus(value), nil
	default:
		return "", NewValidationError(fmt.Sprintf(
			"invalid enrollment status %q: must be one of ACTIVE, INACTIVE, WITHDRAWN", value))
	}
}

func (s EnrollmentStatus) String() string {
	return string(s)
}

// CanTransitionTo проверяет допустимость перехода статуса
func (s EnrollmentStatus) CanTransitionTo(target EnrollmentStatus) bool {
	// Переход в то же состояние всегда допустим
	if s == target {
		return true
	}

	switch s {
	case EnrollmentActive:
		return target == EnrollmentInactive || target == EnrollmentWithdrawn
	case EnrollmentInactive:
		return target == EnrollmentActive || target == EnrollmentWithdrawn
	case EnrollmentWithdrawn:
		// Возврат возможен только в статус ACTIVE
		return target == EnrollmentActive
	}

	return false
}

// CanJoinTeam - состоять в команде может только активный участник
func (s EnrollmentStatus) CanJoinTeam() bool {
	return s == EnrollmentActive
}
