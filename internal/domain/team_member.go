package domain

// TeamMember - участник команды
// Дочерняя сущность агрегата Team; идентичность определяется по ID
type TeamMember struct {
	id     string
	name   string
	email  EmailAddress
	status EnrollmentStatus
}

// NewTeamMember создает участника; новый участник всегда в статусе ACTIVE
func NewTeamMember(name, email string) (*TeamMember, error) {
	if name == "" {
		return nil, NewValidationError("member name must not be empty")
	}

	emailAddr, err := NewEmailAddress(email)
	if err != nil {
		return nil, err
	}

	return &TeamMember{
		id:     NewID(),
		name:   name,
		email:  emailAddr,
		status: EnrollmentActive,
	}, nil
}

// ReconstructTeamMember восстанавливает участника из сохраненных данных
func ReconstructTeamMember(id, name, email, status string) (*TeamMember, error) {
	emailAddr, err := NewEmailAddress(email)
	if err != nil {
		return nil, err
	}

	enrollment, err := ParseEnrollmentStatus(status)
	if err != nil {
		return nil, err
	}

	return &TeamMember{
		id:     id,
		name:   name,
		email:  emailAddr,
		status: enrollment,
	}, nil
}

func (m *TeamMember) ID() string {
	return m.id
}

func (m *TeamMember) Name() string {
	return m.name
}

func (m *TeamMember) Email() EmailAddress {
	return m.email
}

func (m *TeamMember) Status() EnrollmentStatus {
	return m.status
}

// ChangeStatus меняет статус участия с проверкой допустимости перехода
func (m *TeamMember) ChangeStatus(newStatus EnrollmentStatus) error {
	if !m.status.CanTransitionTo(newStatus) {
		return NewInvalidTransitionError("enrollment status", m.status.String(), newStatus.String())
	}

	m.status = newStatus
	return nil
}

// CanJoinTeam - может ли участник состоять в команде
func (m *TeamMember) CanJoinTeam() bool {
	return m.status.CanJoinTeam()
}

// Equals сравнивает участников по идентичности
func (m *TeamMember) Equals(other *TeamMember) bool {
	if other == nil {
		return false
	}
	return m.id == other.id
}
