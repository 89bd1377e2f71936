package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-task-service/internal/domain"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.Title, req.OwnerID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateTaskResponse{
		Task: domainTaskToHTTP(task),
	})
}

func (h *Handler) EditTask(w http.ResponseWriter, r *http.Request) {
	var req EditTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	task, err := h.taskService.EditTaskTitle(r.Context(), req.TaskID, req.RequesterID, req.Title)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainTaskToHTTP(task))
}

func (h *Handler) SetProgress(w http.ResponseWriter, r *http.Request) {
	var req SetProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	task, err := h.taskService.UpdateProgress(r.Context(), req.TaskID, req.RequesterID, req.Status)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainTaskToHTTP(task))
}

func (h *Handler) SetDone(w http.ResponseWriter, r *http.Request) {
	var req SetDoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	task, err := h.taskService.SetTaskDone(r.Context(), req.TaskID, req.RequesterID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainTaskToHTTP(task))
}

func (h *Handler) GetTasksByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if ownerID == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "owner_id parameter is required",
		})
		return
	}

	tasks, err := h.taskService.GetTasksByOwner(r.Context(), ownerID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(GetTasksByOwnerResponse{
		OwnerID: ownerID,
		Tasks:   domainTasksToHTTP(tasks),
	})
}
