package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-task-service/internal/domain"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), req.TeamName)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateTeamResponse{
		Team: domainTeamToHTTP(team),
	})
}

// GetTeam находит команду по team_id или team_name
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID := r.URL.Query().Get("team_id")
	teamName := r.URL.Query().Get("team_name")

	if teamID == "" && teamName == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "team_id or team_name parameter is required",
		})
		return
	}

	var team *domain.Team
	var err error
	if teamID != "" {
		team, err = h.teamService.GetTeamByID(r.Context(), teamID)
	} else {
		team, err = h.teamService.GetTeamByName(r.Context(), teamName)
	}
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainTeamToHTTP(team))
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.AddMember(r.Context(), req.TeamID, req.Name, req.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainTeamToHTTP(team))
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	var req RemoveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.RemoveMember(r.Context(), req.TeamID, req.MemberID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainTeamToHTTP(team))
}

func (h *Handler) ChangeMemberStatus(w http.ResponseWriter, r *http.Request) {
	var req ChangeMemberStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.ChangeMemberStatus(r.Context(), req.TeamID, req.MemberID, req.Status)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainTeamToHTTP(team))
}
