package handler

import "github.com/bagdasarian/team-task-service/internal/service"

type Handler struct {
	teamService   service.TeamService
	taskService   service.TaskService
	rosterService service.RosterService
}

func NewHandler(
	teamService service.TeamService,
	taskService service.TaskService,
	rosterService service.RosterService,
) *Handler {
	return &Handler{
		teamService:   teamService,
		taskService:   taskService,
		rosterService: rosterService,
	}
}
