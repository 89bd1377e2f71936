package handler

import (
	"encoding/json"
	"net/http"
)

// GetRoster возвращает сводный список участников всех команд
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	entries, err := h.rosterService.GetAllMembers(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(RosterResponse{
		Members: rosterEntriesToHTTP(entries),
	})
}
