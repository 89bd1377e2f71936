package domain

import (
	"net/mail"
	"strings"
)

// EmailAddress - адрес электронной почты участника (value object)
type EmailAddress string

// NewEmailAddress создает адрес с валидацией формата
func NewEmailAddress(value string) (EmailAddress, error) {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !strings.Contains(value, "@") {
		return "", NewValidationError("invalid email address format")
	}
	return EmailAddress(value), nil
}

func (e EmailAddress) String() string {
	return string(e)
}
