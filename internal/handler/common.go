package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/researchsync/researchsync/internal/middleware"
	"github.com/researchsync/researchsync/internal/model"
	"github.com/researchsync/researchsync/internal/service"
)

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// currentUser resolves the authenticated user from the id the auth
// middleware stored in the request context.
func currentUser(ctx context.Context, users *service.UserService) (*model.User, error) {
	idStr, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errUnauthenticated
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, errUnauthenticated
	}

	return users.FindByID(ctx, id)
}

var errUnauthenticated = errors.New("no authenticated user in context")
