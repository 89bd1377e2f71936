package service

import (
	"context"
	"log"

	"github.com/bagdasarian/team-task-service/internal/domain"
	"github.com/bagdasarian/team-task-service/internal/repository"
)

// TeamReorganizationPolicy реагирует на события изменения размера команды
// и запускает объединение или разделение
// Ошибки обработчиков не поднимаются к издателю события: они логируются
// и уходят уведомлением администратору
type TeamReorganizationPolicy struct {
	teamRepo     repository.TeamRepository
	reorgService ReorganizationService
	notifier     AdminNotifier
}

// NewTeamReorganizationPolicy создает политику и подписывает ее на шину
func NewTeamReorganizationPolicy(
	bus *domain.EventBus,
	teamRepo repository.TeamRepository,
	reorgService ReorganizationService,
	notifier AdminNotifier,
) *TeamReorganizationPolicy {
	p := &TeamReorganizationPolicy{
		teamRepo:     teamRepo,
		reorgService: reorgService,
		notifier:     notifier,
	}

	bus.Subscribe(domain.TeamUndersizedEventName, p.handleTeamUndersized)
	bus.Subscribe(domain.TeamOversizedEventName, p.handleTeamOversized)

	return p
}

func (p *TeamReorganizationPolicy) handleTeamUndersized(e domain.Event) {
	event := e.(domain.TeamUndersizedEvent)
	ctx := context.Background()

	log.Printf("[TeamReorganizationPolicy] team %s is undersized with %d members",
		event.TeamID, event.CurrentSize)

	// Пустая команда допустима, действий не требуется
	if event.CurrentSize != 1 {
		log.Printf("[TeamReorganizationPolicy] team %s has %d members, no action needed",
			event.TeamID, event.CurrentSize)
		return
	}

	undersized, err := p.teamRepo.FindByID(ctx, event.TeamID)
	if err != nil {
		log.Printf("[TeamReorganizationPolicy] failed to find undersized team %s: %v", event.TeamID, err)
		p.notifier.NotifyReorganizationFailed(ctx, event.TeamID, "undersized team lookup failed: "+err.Error())
		return
	}

	teams, err := p.teamRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[TeamReorganizationPolicy] failed to list teams: %v", err)
		p.notifier.NotifyReorganizationFailed(ctx, event.TeamID, "team listing failed: "+err.Error())
		return
	}

	target := p.selectMergeTarget(event.TeamID, teams)
	if target == nil {
		log.Printf("[TeamReorganizationPolicy] no target team found for merging %s", event.TeamID)
		p.notifier.NotifyReorganizationFailed(ctx, event.TeamID, "no merge target available")
		return
	}

	// Полную команду сначала разделяем, затем вливаемся
	// в меньшую из получившихся половин
	if target.Size() == domain.MaxTeamSize {
		halves, err := p.reorgService.SplitTeam(ctx, target)
		if err != nil {
			log.Printf("[TeamReorganizationPolicy] failed to split merge target %s: %v", target.ID(), err)
			p.notifier.NotifyReorganizationFailed(ctx, event.TeamID, "merge target split failed: "+err.Error())
			return
		}
		target = smallestTeam(halves)
	}

	if err := p.reorgService.MergeTeams(ctx, undersized, target); err != nil {
		log.Printf("[TeamReorganizationPolicy] failed to merge team %s into %s: %v",
			event.TeamID, target.ID(), err)
		p.notifier.NotifyReorganizationFailed(ctx, event.TeamID, "merge failed: "+err.Error())
		return
	}

	log.Printf("[TeamReorganizationPolicy] successfully merged team %s into team %s",
		event.TeamID, target.ID())
	p.notifier.NotifyReorganizationCompleted(ctx, event.TeamID, "merged into team "+target.ID())
}

func (p *TeamReorganizationPolicy) handleTeamOversized(e domain.Event) {
	event := e.(domain.TeamOversizedEvent)
	ctx := context.Background()

	log.Printf("[TeamReorganizationPolicy] team %s is oversized with %d members",
		event.TeamID, event.CurrentSize)

	oversized, err := p.teamRepo.FindByID(ctx, event.TeamID)
	if err != nil {
		log.Printf("[TeamReorganizationPolicy] failed to find oversized team %s: %v", event.TeamID, err)
		p.notifier.NotifyReorganizationFailed(ctx, event.TeamID, "oversized team lookup failed: "+err.Error())
		return
	}

	result, err := p.reorgService.SplitTeam(ctx, oversized)
	if err != nil {
		log.Printf("[TeamReorganizationPolicy] failed to split team %s: %v", event.TeamID, err)
		p.notifier.NotifyReorganizationFailed(ctx, event.TeamID, "split failed: "+err.Error())
		return
	}

	log.Printf("[TeamReorganizationPolicy] successfully split team %s into %d teams",
		event.TeamID, len(result))
	p.notifier.NotifyReorganizationCompleted(ctx, event.TeamID, "split into two teams")
}

// selectMergeTarget выбирает команду с наименьшим числом участников,
// исключая саму недоукомплектованную; при равенстве побеждает первая
// в порядке выдачи репозитория
func (p *TeamReorganizationPolicy) selectMergeTarget(undersizedID string, teams []*domain.Team) *domain.Team {
	var target *domain.Team
	for _, team := range teams {
		if team.ID() == undersizedID {
			continue
		}
		if target == nil || team.Size() < target.Size() {
			target = team
		}
	}
	return target
}

func smallestTeam(teams []*domain.Team) *domain.Team {
	smallest := teams[0]
	for _, team := range teams[1:] {
		if team.Size() < smallest.Size() {
			smallest = team
		}
	}
	return smallest
}
