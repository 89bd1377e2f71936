package domain

const (
	TeamCreatedEventName         = "TeamCreatedEvent"
	MemberAddedEventName         = "MemberAddedEvent"
	MemberRemovedEventName       = "MemberRemovedEvent"
	MemberStatusChangedEventName = "MemberStatusChangedEvent"
	TeamUndersizedEventName      = "TeamUndersizedEvent"
	TeamOversizedEventName       = "TeamOversizedEvent"
)

// TeamCreatedEvent - создана новая команда
type TeamCreatedEvent struct {
	baseEvent
	TeamID   string
	TeamName TeamName
}

func NewTeamCreatedEvent(teamID string, teamName TeamName) TeamCreatedEvent {
	return TeamCreatedEvent{baseEvent: newBaseEvent(), TeamID: teamID, TeamName: teamName}
}

func (e TeamCreatedEvent) EventName() string { return TeamCreatedEventName }

// MemberAddedEvent - в команду добавлен участник
type MemberAddedEvent struct {
	baseEvent
	TeamID       string
	MemberID     string
	MemberName   string
	MemberEmail  EmailAddress
	MemberStatus EnrollmentStatus
}

func NewMemberAddedEvent(teamID string, member *TeamMember) MemberAddedEvent {
	return MemberAddedEvent{
		baseEvent:    newBaseEvent(),
		TeamID:       teamID,
		MemberID:     member.ID(),
		MemberName:   member.Name(),
		MemberEmail:  member.Email(),
		MemberStatus: member.Status(),
	}
}

func (e MemberAddedEvent) EventName() string { return MemberAddedEventName }

// MemberRemovedEvent - участник удален из команды
type MemberRemovedEvent struct {
	baseEvent
	TeamID     string
	MemberID   string
	MemberName string
}

func NewMemberRemovedEvent(teamID, memberID, memberName string) MemberRemovedEvent {
	return MemberRemovedEvent{
		baseEvent:  newBaseEvent(),
		TeamID:     teamID,
		MemberID:   memberID,
		MemberName: memberName,
	}
}

func (e MemberRemovedEvent) EventName() string { return MemberRemovedEventName }

// MemberStatusChangedEvent - изменен статус участия члена команды
type MemberStatusChangedEvent struct {
	baseEvent
	TeamID         string
	MemberID       string
	MemberName     string
	PreviousStatus EnrollmentStatus
	NewStatus      EnrollmentStatus
}

func NewMemberStatusChangedEvent(teamID, memberID, memberName string, previous, next EnrollmentStatus) MemberStatusChangedEvent {
	return MemberStatusChangedEvent{
		baseEvent:      newBaseEvent(),
		TeamID:         teamID,
		MemberID:       memberID,
		MemberName:     memberName,
		PreviousStatus: previous,
		NewStatus:      next,
	}
}

func (e MemberStatusChangedEvent) EventName() string { return MemberStatusChangedEventName }

// TeamUndersizedEvent - в команде осталось меньше двух участников
type TeamUndersizedEvent struct {
	baseEvent
	TeamID      string
	TeamName    TeamName
	CurrentSize int
}

func NewTeamUndersizedEvent(teamID string, teamName TeamName, currentSize int) TeamUndersizedEvent {
	return TeamUndersizedEvent{
		baseEvent:   newBaseEvent(),
		TeamID:      teamID,
		TeamName:    teamName,
		CurrentSize: currentSize,
	}
}

func (e TeamUndersizedEvent) EventName() string { return TeamUndersizedEventName }

// TeamOversizedEvent - попытка превысить лимит размера команды
// CurrentSize содержит переходный размер, включая отклоненного участника
type TeamOversizedEvent struct {
	baseEvent
	TeamID      string
	TeamName    TeamName
	CurrentSize int
}

func NewTeamOversizedEvent(teamID string, teamName TeamName, currentSize int) TeamOversizedEvent {
	return TeamOversizedEvent{
		baseEvent:   newBaseEvent(),
		TeamID:      teamID,
		TeamName:    teamName,
		CurrentSize: currentSize,
	}
}

func (e TeamOversizedEvent) EventName() string { return TeamOversizedEventName }
