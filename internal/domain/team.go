package domain

import "fmt"

// MaxTeamSize - максимальный размер команды
const MaxTeamSize = 4

// Team - корень агрегата команды
// Все мутации состава проходят через методы Team; инвариант размера
// проверяется на каждой мутации, нарушение откатывает изменение
type Team struct {
	id      string
	name    TeamName
	members []*TeamMember
	bus     *EventBus
}

// NewTeam создает пустую команду и публикует TeamCreatedEvent
func NewTeam(name TeamName, bus *EventBus) *Team {
	team := &Team{
		id:      NewID(),
		name:    name,
		members: []*TeamMember{},
		bus:     bus,
	}

	bus.Publish(NewTeamCreatedEvent(team.id, team.name))

	return team
}

// ReconstructTeam восстанавливает команду из сохраненных данных
// Инвариант размера проверяется сразу: нарушение означает поврежденные
// данные в хранилище, а не бизнес-ошибку
func ReconstructTeam(id string, name TeamName, members []*TeamMember, bus *EventBus) (*Team, error) {
	team := &Team{
		id:      id,
		name:    name,
		members: members,
		bus:     bus,
	}

	if err := team.validateTeamSize(); err != nil {
		return nil, err
	}

	return team, nil
}

func (t *Team) ID() string {
	return t.id
}

func (t *Team) Name() TeamName {
	return t.name
}

// Members возвращает копию списка участников
func (t *Team) Members() []*TeamMember {
	members := make([]*TeamMember, len(t.members))
	copy(members, t.members)
	return members
}

// Size возвращает текущее число участников
func (t *Team) Size() int {
	return len(t.members)
}

// AddMember добавляет участника в команду
// При превышении лимита публикуется TeamOversizedEvent с переходным
// размером (включая отклоненного участника), после чего добавление
// откатывается и возвращается ошибка
func (t *Team) AddMember(member *TeamMember) error {
	if !member.CanJoinTeam() {
		return &DomainError{
			Code:    "MEMBER_NOT_JOINABLE",
			Message: fmt.Sprintf("member with enrollment status %s cannot join a team", member.Status()),
		}
	}

	for _, m := range t.members {
		if m.Equals(member) {
			return ErrDuplicateMember
		}
	}

	t.members = append(t.members, member)

	if err := t.validateTeamSize(); err != nil {
		// Подписчики должны увидеть момент пересечения границы,
		// хотя сама мутация откатывается
		t.bus.Publish(NewTeamOversizedEvent(t.id, t.name, len(t.members)))
		t.members = t.members[:len(t.members)-1]
		return err
	}

	t.bus.Publish(NewMemberAddedEvent(t.id, member))

	return nil
}

// RemoveMember удаляет участника из команды
// Если после удаления остается 0 или 1 участник, публикуется
// TeamUndersizedEvent - триггер для последующей реорганизации
func (t *Team) RemoveMember(memberID string) error {
	index := -1
	for i, m := range t.members {
		if m.ID() == memberID {
			index = i
			break
		}
	}
	if index == -1 {
		return ErrNotMember
	}

	removed := t.members[index]
	t.members = append(t.members[:index], t.members[index+1:]...)

	// Удаление не может нарушить верхнюю границу, но инвариант
	// перепроверяется симметрично добавлению
	if err := t.validateTeamSize(); err != nil {
		t.members = append(t.members[:index], append([]*TeamMember{removed}, t.members[index:]...)...)
		return err
	}

	t.bus.Publish(NewMemberRemovedEvent(t.id, removed.ID(), removed.Name()))

	if len(t.members) <= 1 {
		t.bus.Publish(NewTeamUndersizedEvent(t.id, t.name, len(t.members)))
	}

	return nil
}

// ChangeMemberStatus меняет статус участия члена команды
// Участник, потерявший право состоять в команде, автоматически
// удаляется из состава
func (t *Team) ChangeMemberStatus(memberID string, newStatus EnrollmentStatus) error {
	var member *TeamMember
	for _, m := range t.members {
		if m.ID() == memberID {
			member = m
			break
		}
	}
	if member == nil {
		return ErrNotMember
	}

	previous := member.Status()
	if err := member.ChangeStatus(newStatus); err != nil {
		return err
	}

	t.bus.Publish(NewMemberStatusChangedEvent(t.id, member.ID(), member.Name(), previous, newStatus))

	if !member.CanJoinTeam() {
		return t.RemoveMember(memberID)
	}

	return nil
}

// validateTeamSize проверяет инвариант размера команды
// Размеры 0 и 1 допустимы (реорганизация реагирует на них событием,
// а не отказом); отклоняется только размер больше 4
func (t *Team) validateTeamSize() error {
	if len(t.members) > MaxTeamSize {
		return ErrTeamSizeExceeded
	}
	return nil
}

// Equals сравнивает команды по идентичности
func (t *Team) Equals(other *Team) bool {
	if other == nil {
		return false
	}
	return t.id == other.id
}
