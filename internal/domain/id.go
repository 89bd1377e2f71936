package domain

import "github.com/google/uuid"

// NewID генерирует сортируемый по времени уникальный идентификатор (UUID v7)
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
