package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMember создает активного участника с уникальным email
func newTestMember(t *testing.T, name string) *TeamMember {
	t.Helper()
	member, err := NewTeamMember(name, fmt.Sprintf("%s-%s@example.com", name, NewID()))
	require.NoError(t, err)
	return member
}

// newTestTeam создает команду с указанным числом участников
func newTestTeam(t *testing.T, bus *EventBus, size int) *Team {
	t.Helper()
	name, err := NewTeamName("alpha")
	require.NoError(t, err)
	team := NewTeam(name, bus)
	for i := 0; i < size; i++ {
		require.NoError(t, team.AddMember(newTestMember(t, fmt.Sprintf("member%d", i))))
	}
	return team
}

// collectEvents подписывает сборщик на указанные типы событий
func collectEvents(bus *EventBus, names ...string) *[]Event {
	events := &[]Event{}
	for _, name := range names {
		bus.Subscribe(name, func(e Event) { *events = append(*events, e) })
	}
	return events
}

func TestNewTeam(t *testing.T) {
	t.Run("создание публикует TeamCreatedEvent", func(t *testing.T) {
		bus := NewEventBus()
		events := collectEvents(bus, TeamCreatedEventName)

		name, err := NewTeamName("alpha")
		require.NoError(t, err)
		team := NewTeam(name, bus)

		assert.NotEmpty(t, team.ID())
		assert.Equal(t, name, team.Name())
		assert.Equal(t, 0, team.Size())
		require.Len(t, *events, 1)
		created := (*events)[0].(TeamCreatedEvent)
		assert.Equal(t, team.ID(), created.TeamID)
	})
}

func TestReconstructTeam(t *testing.T) {
	t.Run("успешное восстановление", func(t *testing.T) {
		bus := NewEventBus()
		members := []*TeamMember{newTestMember(t, "a"), newTestMember(t, "b")}

		team, err := ReconstructTeam("team-1", "alpha", members, bus)
		require.NoError(t, err)
		assert.Equal(t, 2, team.Size())
	})

	t.Run("ошибка: размер больше 4 означает поврежденные данные", func(t *testing.T) {
		bus := NewEventBus()
		members := make([]*TeamMember, 5)
		for i := range members {
			members[i] = newTestMember(t, fmt.Sprintf("m%d", i))
		}

		_, err := ReconstructTeam("team-1", "alpha", members, bus)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTeamSizeExceeded)
	})
}

func TestTeam_AddMember(t *testing.T) {
	t.Run("успешное добавление публикует MemberAddedEvent", func(t *testing.T) {
		bus := NewEventBus()
		team := newTestTeam(t, bus, 0)
		events := collectEvents(bus, MemberAddedEventName)

		member := newTestMember(t, "alice")
		require.NoError(t, team.AddMember(member))

		assert.Equal(t, 1, team.Size())
		require.Len(t, *events, 1)
		added := (*events)[0].(MemberAddedEvent)
		assert.Equal(t, team.ID(), added.TeamID)
		assert.Equal(t, member.ID(), added.MemberID)
		assert.Equal(t, member.Email(), added.MemberEmail)
		assert.Equal(t, EnrollmentActive, added.MemberStatus)
	})

	t.Run("ошибка: неактивный участник не может быть добавлен", func(t *testing.T) {
		bus := NewEventBus()
		team := newTestTeam(t, bus, 0)

		member, err := ReconstructTeamMember("m1", "Bob", "bob@example.com", "INACTIVE")
		require.NoError(t, err)

		err = team.AddMember(member)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "INACTIVE")
		assert.Equal(t, 0, team.Size())
	})

	t.Run("ошибка: участник уже состоит в команде", func(t *testing.T) {
		bus := NewEventBus()
		team := newTestTeam(t, bus, 0)
		member := newTestMember(t, "alice")

		require.NoError(t, team.AddMember(member))
		err := team.AddMember(member)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateMember)
		assert.Equal(t, 1, team.Size())
	})

	t.Run("пятый участник отклоняется с откатом и событием TeamOversizedEvent", func(t *testing.T) {
		bus := NewEventBus()
		team := newTestTeam(t, bus, 4)
		events := collectEvents(bus, TeamOversizedEventName)

		err := team.AddMember(newTestMember(t, "extra"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTeamSizeExceeded)
		// Мутация откатилась
		assert.Equal(t, 4, team.Size())
		// Событие несет переходный размер, включая отклоненного участника
		require.Len(t, *events, 1)
		oversized := (*events)[0].(TeamOversizedEvent)
		assert.Equal(t, 5, oversized.CurrentSize)
		assert.Equal(t, team.ID(), oversized.TeamID)
	})
}

func TestTeam_RemoveMember(t *testing.T) {
	t.Run("успешное удаление публикует MemberRemovedEvent", func(t *testing.T) {
		bus := NewEventBus()
		team := newTestTeam(t, bus, 3)
		member := team.Members()[0]
		events := collectEvents(bus, MemberRemovedEventName)

		require.NoError(t, team.RemoveMember(member.ID()))

		assert.Equal(t, 2, team.Size())
		require.Len(t, *events, 1)
		removed := (*events)[0].(MemberRemovedEvent)
		assert.Equal(t, member.ID(), removed.MemberID)
		assert.Equal(t, member.Name(), removed.MemberName)
	})

	t.Run("ошибка: участник не состоит в команде", func(t *testing.T) {
		bus := NewEventBus()
		team := newTestTeam(t, bus, 2)

		err := team.RemoveMember("unknown-id")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotMember)
		assert.Equal(t, 2, team.Size())
	})

	t.Run("удаление предпоследнего участника публикует TeamUndersizedEvent с размером 1", func(t *testing.T) {
		bus := NewEventBus()
		team := newTestTeam(t, bus, 2)
		events := collectEvents(bus, TeamUndersizedEventName)

		require.NoError(t, team.RemoveMember(team.Members()[0].ID()))

		require.Len(t, *events, 1)
		undersized := (*events)[0].(TeamUndersizedEvent)
		assert.Equal(t, 1, undersized.CurrentSize)
		assert.Equal(t, team.Name(), undersized.TeamName)
	})

	t.Run("удаление последнего участника публикует TeamUndersizedEvent с размером 0", func(t *testing.T) {
		bus := NewEventBus()
		team := newTestTeam(t, bus, 1)
		events := collectEvents(bus, TeamUndersizedEventName)

		require.NoError(t, team.RemoveMember(team.Members()[0].ID()))

		require.Len(t, *events, 1)
		assert.Equal(t, 0, (*events)[0].(TeamUndersizedEvent).CurrentSize)
	})
}

func TestTeam_ChangeMemberStatus(t *testing.T) {
	t.Run("успешное изменение публикует MemberStatusChangedEvent", func(t *testing.T) {
		bus := NewEventBus()
		team := newTestTeam(t, bus, 3)
		member := team.Members()[0]
		events := collectEvents(bus, MemberStatusChangedEventName)

		require.NoError(t, team.ChangeMemberStatus(member.ID(), EnrollmentInactive))

		require.Len(t, *events, 1)
		changed := (*events)[0].(MemberStatusChangedEvent)
		assert.Equal(t, EnrollmentActive, changed.PreviousStatus)
		assert.Equal(t, EnrollmentInactive, changed.NewStatus)
	})

	t.Run("неактивный участник автоматически исключается из команды", func(t *testing.T) {
		bus := NewEventBus()
		team := newTestTeam(t, bus, 3)
		member := team.Members()[0]
		removedEvents := collectEvents(bus, MemberRemovedEventName)

		require.NoError(t, team.ChangeMemberStatus(member.ID(), EnrollmentWithdrawn))

		assert.Equal(t, 2, team.Size())
		require.Len(t, *removedEvents, 1)
		for _, m := range team.Members() {
			assert.NotEqual(t, member.ID(), m.ID())
		}
	})

	t.Run("исключение предпоследнего участника каскадно публикует TeamUndersizedEvent", func(t *testing.T) {
		bus := NewEventBus()
		team := newTestTeam(t, bus, 2)
		member := team.Members()[0]
		undersized := collectEvents(bus, TeamUndersizedEventName)

		require.NoError(t, team.ChangeMemberStatus(member.ID(), EnrollmentInactive))

		assert.Equal(t, 1, team.Size())
		require.Len(t, *undersized, 1)
		assert.Equal(t, 1, (*undersized)[0].(TeamUndersizedEvent).CurrentSize)
	})

	t.Run("ошибка: участник не состоит в команде", func(t *testing.T) {
		bus := NewEventBus()
		team := newTestTeam(t, bus, 2)

		err := team.ChangeMemberStatus("unknown-id", EnrollmentInactive)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotMember)
	})

	t.Run("исключенный участник больше не доступен через команду", func(t *testing.T) {
		bus := NewEventBus()
		team := newTestTeam(t, bus, 2)
		member := team.Members()[0]

		require.NoError(t, team.ChangeMemberStatus(member.ID(), EnrollmentWithdrawn))

		err := team.ChangeMemberStatus(member.ID(), EnrollmentInactive)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotMember)
	})

	t.Run("ошибка недопустимого перехода статуса передается без изменений", func(t *testing.T) {
		bus := NewEventBus()
		member, err := ReconstructTeamMember("m1", "Alice", "alice@example.com", "WITHDRAWN")
		require.NoError(t, err)
		// Восстановленная команда может содержать участника в статусе WITHDRAWN
		team, err := ReconstructTeam("team-1", "alpha", []*TeamMember{member, newTestMember(t, "b")}, bus)
		require.NoError(t, err)

		err = team.ChangeMemberStatus("m1", EnrollmentInactive)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, 2, team.Size())
	})
}

func TestTeam_Members_ReturnsCopy(t *testing.T) {
	bus := NewEventBus()
	team := newTestTeam(t, bus, 2)

	members := team.Members()
	members[0] = nil

	// Внутреннее состояние агрегата не затронуто
	assert.NotNil(t, team.Members()[0])
}

func TestTeam_SizeInvariantHolds(t *testing.T) {
	// После любой последовательности операций размер остается в границах 0..4
	bus := NewEventBus()
	team := newTestTeam(t, bus, 0)

	var ids []string
	for i := 0; i < 6; i++ {
		member := newTestMember(t, fmt.Sprintf("m%d", i))
		if err := team.AddMember(member); err == nil {
			ids = append(ids, member.ID())
		}
		assert.LessOrEqual(t, team.Size(), MaxTeamSize)
	}

	for _, id := range ids {
		_ = team.RemoveMember(id)
		assert.GreaterOrEqual(t, team.Size(), 0)
		assert.LessOrEqual(t, team.Size(), MaxTeamSize)
	}
}
