package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateTeamRequest struct {
	TeamName string `json:"team_name"`
}

type TeamMemberResponse struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

type TeamResponse struct {
	TeamID   string               `json:"team_id"`
	TeamName string               `json:"team_name"`
	Members  []TeamMemberResponse `json:"members"`
}

type CreateTeamResponse struct {
	Team TeamResponse `json:"team"`
}

type AddMemberRequest struct {
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type RemoveMemberRequest struct {
	TeamID   string `json:"team_id"`
	MemberID string `json:"member_id"`
}

type ChangeMemberStatusRequest struct {
	TeamID   string `json:"team_id"`
	MemberID string `json:"member_id"`
	Status   string `json:"status"`
}

type CreateTaskRequest struct {
	Title   string `json:"title"`
	OwnerID string `json:"owner_id"`
}

type TaskResponse struct {
	TaskID         string `json:"task_id"`
	Title          string `json:"title"`
	OwnerID        string `json:"owner_id"`
	ProgressStatus string `json:"progress_status"`
}

type CreateTaskResponse struct {
	Task TaskResponse `json:"task"`
}

type EditTaskRequest struct {
	TaskID      string `json:"task_id"`
	RequesterID string `json:"requester_id"`
	Title       string `json:"title"`
}

type SetProgressRequest struct {
	TaskID      string `json:"task_id"`
	RequesterID string `json:"requester_id"`
	Status      string `json:"status"`
}

type SetDoneRequest struct {
	TaskID      string `json:"task_id"`
	RequesterID string `json:"requester_id"`
}

type GetTasksByOwnerResponse struct {
	OwnerID string         `json:"owner_id"`
	Tasks   []TaskResponse `json:"tasks"`
}

type RosterEntryResponse struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Status   string `json:"status"`
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
}

type RosterResponse struct {
	Members []RosterEntryResponse `json:"members"`
}
