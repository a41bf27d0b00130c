// internal/handler/task.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/researchsync/researchsync/internal/domain"
	"github.com/researchsync/researchsync/internal/model"
	"github.com/researchsync/researchsync/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
	userService *service.UserService
}

func NewTaskHandler(taskService *service.TaskService, userService *service.UserService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		userService: userService,
	}
}

type TaskResponse struct {
	BaseResponse
	Task *model.Task `json:"task"`
}

type TaskListResponse struct {
	BaseResponse
	Tasks []*model.Task `json:"tasks"`
}

func (h *TaskHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r.Context(), h.userService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	workspaceID, err := uuid.Parse(chi.URLParam(r, "workspaceID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid workspace id")
		return
	}

	var input service.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.WorkspaceID = workspaceID

	task, err := h.taskService.Create(r.Context(), input, user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			respondWithError(w, http.StatusNotFound, "Workspace not found")
		case errors.Is(err, domain.ErrPermissionDenied):
			respondWithError(w, http.StatusForbidden, "Workspace membership required")
		case errors.Is(err, domain.ErrNotAMember):
			respondWithError(w, http.StatusUnprocessableEntity, "Assignee is not an accepted member")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			slog.ErrorContext(r.Context(), "Task creation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, TaskResponse{
		BaseResponse: BaseResponse{Ok: true},
		Task:         task,
	})
}

func (h *TaskHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r.Context(), h.userService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	workspaceID, err := uuid.Parse(chi.URLParam(r, "workspaceID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid workspace id")
		return
	}

	var (
		tasks   []*model.Task
		listErr error
	)
	switch {
	case r.URL.Query().Get("q") != "":
		tasks, listErr = h.taskService.SearchInWorkspace(r.Context(), workspaceID, r.URL.Query().Get("q"), user)
	case r.URL.Query().Get("status") != "":
		status := model.TaskStatus(r.URL.Query().Get("status"))
		tasks, listErr = h.taskService.ListByWorkspaceAndStatus(r.Context(), workspaceID, status, user)
	default:
		tasks, listErr = h.taskService.ListByWorkspace(r.Context(), workspaceID, user)
	}
	if listErr != nil {
		if errors.Is(listErr, domain.ErrPermissionDenied) {
			respondWithError(w, http.StatusForbidden, "Workspace access required")
			return
		}
		slog.ErrorContext(r.Context(), "Task list error", "error", listErr, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, TaskListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Tasks:        tasks,
	})
}

// AssignedHandler lists the tasks assigned to the authenticated user.
// ?active=true narrows to tasks not yet in a terminal status.
func (h *TaskHandler) AssignedHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r.Context(), h.userService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var (
		tasks   []*model.Task
		listErr error
	)
	if r.URL.Query().Get("active") == "true" {
		tasks, listErr = h.taskService.ListActiveAssigned(r.Context(), user)
	} else {
		tasks, listErr = h.taskService.ListAssigned(r.Context(), user)
	}
	if listErr != nil {
		slog.ErrorContext(r.Context(), "Assigned task list error", "error", listErr, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, TaskListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Tasks:        tasks,
	})
}

func (h *TaskHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r.Context(), h.userService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	task, err := h.taskService.Get(r.Context(), taskID, user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			respondWithError(w, http.StatusNotFound, "Task not found")
		case errors.Is(err, domain.ErrPermissionDenied):
			respondWithError(w, http.StatusForbidden, "Workspace access required")
		default:
			slog.ErrorContext(r.Context(), "Task lookup error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, TaskResponse{
		BaseResponse: BaseResponse{Ok: true},
		Task:         task,
	})
}

type AssignRequest struct {
	AssigneeID uuid.UUID `json:"assignee_id"`
}

func (h *TaskHandler) AssignHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r.Context(), h.userService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	task, err := h.taskService.Assign(r.Context(), taskID, req.AssigneeID, user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			respondWithError(w, http.StatusNotFound, "Task not found")
		case errors.Is(err, domain.ErrPermissionDenied):
			respondWithError(w, http.StatusForbidden, "Not allowed to assign this task")
		case errors.Is(err, domain.ErrNotAMember):
			respondWithError(w, http.StatusUnprocessableEntity, "Assignee is not an accepted member")
		default:
			slog.ErrorContext(r.Context(), "Task assignment error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, TaskResponse{
		BaseResponse: BaseResponse{Ok: true},
		Task:         task,
	})
}

type StatusRequest struct {
	Status model.TaskStatus `json:"status"`
}

func (h *TaskHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r.Context(), h.userService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	task, err := h.taskService.UpdateStatus(r.Context(), taskID, req.Status, user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			respondWithError(w, http.StatusNotFound, "Task not found")
		case errors.Is(err, domain.ErrPermissionDenied):
			respondWithError(w, http.StatusForbidden, "Workspace membership required")
		case errors.Is(err, domain.ErrInvalidTransition):
			respondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			slog.ErrorContext(r.Context(), "Task status error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, TaskResponse{
		BaseResponse: BaseResponse{Ok: true},
		Task:         task,
	})
}

func (h *TaskHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r.Context(), h.userService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	var input service.UpdateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.ID = taskID

	task, err := h.taskService.Update(r.Context(), input, user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			respondWithError(w, http.StatusNotFound, "Task not found")
		case errors.Is(err, domain.ErrPermissionDenied):
			respondWithError(w, http.StatusForbidden, "Not allowed to edit this task")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			slog.ErrorContext(r.Context(), "Task update error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, TaskResponse{
		BaseResponse: BaseResponse{Ok: true},
		Task:         task,
	})
}

func (h *TaskHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r.Context(), h.userService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid task id")
		return
	}

	if err := h.taskService.Delete(r.Context(), taskID, user); err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			respondWithError(w, http.StatusNotFound, "Task not found")
		case errors.Is(err, domain.ErrPermissionDenied):
			respondWithError(w, http.StatusForbidden, "Not allowed to delete this task")
		default:
			slog.ErrorContext(r.Context(), "Task delete error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
