package handler

import (
	"github.com/bagdasarian/team-task-service/internal/domain"
	"github.com/bagdasarian/team-task-service/internal/repository"
)

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	members := make([]TeamMemberResponse, 0, team.Size())
	for _, member := range team.Members() {
		members = append(members, TeamMemberResponse{
			MemberID: member.ID(),
			Name:     member.Name(),
			Email:    member.Email().String(),
			Status:   member.Status().String(),
		})
	}

	return TeamResponse{
		TeamID:   team.ID(),
		TeamName: team.Name().String(),
		Members:  members,
	}
}

func domainTaskToHTTP(task *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:         task.ID(),
		Title:          task.Title(),
		OwnerID:        task.OwnerID(),
		ProgressStatus: task.ProgressStatus().String(),
	}
}

func domainTasksToHTTP(tasks []*domain.Task) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, domainTaskToHTTP(task))
	}
	return result
}

func rosterEntriesToHTTP(entries []*repository.RosterEntry) []RosterEntryResponse {
	result := make([]RosterEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, RosterEntryResponse{
			MemberID: entry.MemberID,
			Name:     entry.MemberName,
			Email:    entry.Email,
			Status:   entry.Status,
			TeamID:   entry.TeamID,
			TeamName: entry.TeamName,
		})
	}
	return result
}
