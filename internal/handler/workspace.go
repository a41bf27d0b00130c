// internal/handler/workspace.go
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

type WorkspaceHandler struct {
	workspaceService *service.WorkspaceService
	userService      *service.UserService
	accessService    *service.AccessService
}

func NewWorkspaceHandler(workspaceService *service.WorkspaceService, userService *service.UserService, accessService *service.AccessService) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
		userService:      userService,
		accessService:    accessService,
	}
}

type WorkspaceResponse struct {
	BaseResponse
	Workspace *model.Workspace `json:"workspace"`
}

type WorkspaceListResponse struct {
	BaseResponse
	Workspaces []*model.Workspace `json:"workspaces"`
}

func (h *WorkspaceHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r.Context(), h.userService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input service.CreateWorkspaceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	workspace, err := h.workspaceService.Create(r.Context(), input, user)
	if err != nil {
		slog.ErrorContext(r.Context(), "Workspace creation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, WorkspaceResponse{
		BaseResponse: BaseResponse{Ok: true},
		Workspace:    workspace,
	})
}

func (h *WorkspaceHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r.Context(), h.userService)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var (
		workspaces []*model.Workspace
		listErr    error
	)
	if term := r.URL.Query().Get("q"); term != "" {
		workspaces, listErr = h.workspaceService.Search(r.Context(), term)
	} else if r.URL.Query().Get("created") == "true" {
		workspaces, listErr = h.workspaceService.ListCreated(r.Context(), user)
	} else {
		workspaces, listErr = h.workspaceService.ListForUser(r.Context(), user)
	}
	if listErr != nil {
		slog.ErrorContext(r.Context(), "Workspace list error", "error", listErr, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, WorkspaceListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Workspaces:   workspaces,
	})
}

func (h *WorkspaceHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
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

	workspace, err := h.workspaceService.FindByID(r.Context(), workspaceID)
	if err != nil {
		if errors.Is(err, domain.ErrWorkspaceNotFound) {
			respondWithError(w, http.StatusNotFound, "Workspace not found")
			return
		}
		slog.ErrorContext(r.Context(), "Workspace lookup error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Private workspaces are hidden from non-members rather than denied,
	// so the response does not confirm the workspace exists.
	if workspace.PrivacyLevel == model.PrivacyPrivate && !h.accessService.CanView(r.Context(), user, workspaceID) {
		respondWithError(w, http.StatusNotFound, "Workspace not found")
		return
	}

	respondWithJSON(w, http.StatusOK, WorkspaceResponse{
		BaseResponse: BaseResponse{Ok: true},
		Workspace:    workspace,
	})
}

func (h *WorkspaceHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
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

	var input service.UpdateWorkspaceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()
	input.ID = workspaceID

	workspace, err := h.workspaceService.Update(r.Context(), input, user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			respondWithError(w, http.StatusNotFound, "Workspace not found")
		case errors.Is(err, domain.ErrPermissionDenied):
			respondWithError(w, http.StatusForbidden, "Admin role required")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			slog.ErrorContext(r.Context(), "Workspace update error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, WorkspaceResponse{
		BaseResponse: BaseResponse{Ok: true},
		Workspace:    workspace,
	})
}

func (h *WorkspaceHandler) DeactivateHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := h.workspaceService.Deactivate(r.Context(), workspaceID, user); err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			respondWithError(w, http.StatusNotFound, "Workspace not found")
		case errors.Is(err, domain.ErrPermissionDenied):
			respondWithError(w, http.StatusForbidden, "Only the workspace creator can deactivate it")
		default:
			slog.ErrorContext(r.Context(), "Workspace deactivation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type MemberListResponse struct {
	BaseResponse
	Members []*model.Membership `json:"members"`
}

func (h *WorkspaceHandler) MembersHandler(w http.ResponseWriter, r *http.Request) {
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

	members, err := h.workspaceService.Members(r.Context(), workspaceID, user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPermissionDenied):
			respondWithError(w, http.StatusForbidden, "Workspace access required")
		default:
			slog.ErrorContext(r.Context(), "Member list error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, MemberListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Members:      members,
	})
}

type InviteRequest struct {
	Email  string           `json:"email"`
	Emails []string         `json:"emails"`
	Role   model.MemberRole `json:"role"`
}

type InviteResponse struct {
	BaseResponse
	Membership *model.Membership      `json:"membership,omitempty"`
	Summary    *service.InviteSummary `json:"summary,omitempty"`
}

// InviteHandler handles both single and batch invitations. A request with
// "emails" set goes through the batch path and reports per-email outcomes.
func (h *WorkspaceHandler) InviteHandler(w http.ResponseWriter, r *http.Request) {
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

	var req InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if len(req.Emails) > 0 {
		summary, err := h.workspaceService.InviteMany(r.Context(), workspaceID, req.Emails, req.Role, user)
		if err != nil {
			if errors.Is(err, domain.ErrPermissionDenied) {
				respondWithError(w, http.StatusForbidden, "Admin role required")
				return
			}
			slog.ErrorContext(r.Context(), "Batch invite error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondWithJSON(w, http.StatusOK, InviteResponse{
			BaseResponse: BaseResponse{Ok: true},
			Summary:      &summary,
		})
		return
	}

	membership, err := h.workspaceService.Invite(r.Context(), workspaceID, req.Email, req.Role, user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			respondWithError(w, http.StatusNotFound, "Workspace not found")
		case errors.Is(err, domain.ErrPermissionDenied):
			respondWithError(w, http.StatusForbidden, "Admin role required")
		case errors.Is(err, domain.ErrUserNotFound):
			respondWithError(w, http.StatusNotFound, "No account with that email")
		case errors.Is(err, domain.ErrAlreadyMember):
			respondWithError(w, http.StatusConflict, "User is already a member")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			slog.ErrorContext(r.Context(), "Invite error", "error", err, "requestID", chmw.GetReqID(r.Context()))
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, InviteResponse{
		BaseResponse: BaseResponse{Ok: true},
		Membership:   membership,
	})
}
