package domain

import "regexp"

// Имя состоит из английских букв; числовой суффикс через дефис
// зарезервирован для команд, созданных при разделении
var teamNamePattern = regexp.MustCompile(`^[a-zA-Z]+(-[0-9]+)?$`)

// TeamName - название команды (value object)
type TeamName string

// NewTeamName создает название команды с валидацией
func NewTeamName(value string) (TeamName, error) {
	if value == "" {
		return "", NewValidationError("team name must not be empty")
	}
	if !teamNamePattern.MatchString(value) {
		return "", NewValidationError("team name must contain only ASCII letters")
	}
	return TeamName(value), nil
}

func (n TeamName) String() string {
	return string(n)
}
