// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound             = errors.New("user not found")
	ErrEmailAlreadyExists       = errors.New("email already exists")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrInvalidVerificationToken = errors.New("invalid verification token")
	ErrAlreadyVerified          = errors.New("already verified")

	// Workspace-related errors
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrPermissionDenied  = errors.New("permission denied")

	// Membership-related errors
	ErrAlreadyMember = errors.New("user is already a member of this workspace")
	ErrNotAMember    = errors.New("user is not an accepted member of this workspace")

	// Task-related errors
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTransition = errors.New("invalid task status transition")
)
