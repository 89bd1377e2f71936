package server

import (
	"net/http"

	"github.com/bagdasarian/team-task-service/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /team/create", h.CreateTeam)
	mux.HandleFunc("GET /team/get", h.GetTeam)
	mux.HandleFunc("POST /team/addMember", h.AddMember)
	mux.HandleFunc("POST /team/removeMember", h.RemoveMember)
	mux.HandleFunc("POST /team/changeMemberStatus", h.ChangeMemberStatus)
	mux.HandleFunc("POST /task/create", h.CreateTask)
	mux.HandleFunc("POST /task/edit", h.EditTask)
	mux.HandleFunc("POST /task/setProgress", h.SetProgress)
	mux.HandleFunc("POST /task/setDone", h.SetDone)
	mux.HandleFunc("GET /task/getByOwner", h.GetTasksByOwner)
	mux.HandleFunc("GET /roster", h.GetRoster)
}
