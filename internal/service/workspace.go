// internal/service/workspace.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/researchsync/researchsync/internal/domain"
	"github.com/researchsync/researchsync/internal/model"
	"github.com/researchsync/researchsync/internal/notify"
	"github.com/researchsync/researchsync/internal/repository"
)

type WorkspaceService struct {
	workspaceRepo  repository.WorkspaceRepositoryIface
	membershipRepo repository.MembershipRepositoryIface
	userRepo       repository.UserRepositoryIface
	access         *AccessService
	notifier       notify.Notifier
	validate       *validator.Validate
}

func NewWorkspaceService(
	workspaceRepo repository.WorkspaceRepositoryIface,
	membershipRepo repository.MembershipRepositoryIface,
	userRepo repository.UserRepositoryIface,
	access *AccessService,
	notifier notify.Notifier,
) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo:  workspaceRepo,
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		access:         access,
		notifier:       notifier,
		validate:       validator.New(),
	}
}

type CreateWorkspaceInput struct {
	Name         string             `json:"name" validate:"required,min=2,max=100"`
	Description  string             `json:"description" validate:"max=1000"`
	PrivacyLevel model.PrivacyLevel `json:"privacy_level"`
}

// Create persists a workspace and enrolls the creator as an ADMIN member
// with an already-accepted invitation. Both rows are written in one
// transaction; a workspace without an admin member never exists.
func (s *WorkspaceService) Create(ctx context.Context, input CreateWorkspaceInput, creator *model.User) (*model.Workspace, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	privacy := input.PrivacyLevel
	if privacy == "" {
		privacy = model.PrivacyPrivate
	}

	now := time.Now()
	workspace := &model.Workspace{
		Name:         input.Name,
		Description:  input.Description,
		CreatorID:    creator.ID,
		IsActive:     true,
		PrivacyLevel: privacy,
		CreatedAt:    now,
		LastUpdated:  now,
	}

	owner := &model.Membership{
		UserID:           creator.ID,
		Role:             model.RoleAdmin,
		InvitationStatus: model.InvitationAccepted,
		InvitedAt:        now,
		JoinedAt:         &now,
	}

	if err := s.workspaceRepo.CreateWithOwner(ctx, workspace, owner); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	return workspace, nil
}

func (s *WorkspaceService) FindByID(ctx context.Context, id uuid.UUID) (*model.Workspace, error) {
	return s.workspaceRepo.FindByID(ctx, id)
}

// ListForUser returns workspaces the user created or is an accepted member
// of.
func (s *WorkspaceService) ListForUser(ctx context.Context, user *model.User) ([]*model.Workspace, error) {
	return s.workspaceRepo.FindByUserInvolvement(ctx, user.ID)
}

func (s *WorkspaceService) ListCreated(ctx context.Context, user *model.User) ([]*model.Workspace, error) {
	return s.workspaceRepo.FindByCreator(ctx, user.ID)
}

func (s *WorkspaceService) Search(ctx context.Context, term string) ([]*model.Workspace, error) {
	return s.workspaceRepo.SearchByName(ctx, term)
}

func (s *WorkspaceService) CountForUser(ctx context.Context, user *model.User) (int64, error) {
	return s.workspaceRepo.CountByUserInvolvement(ctx, user.ID)
}

// Members lists the accepted members of a workspace. The requester must be
// able to view the workspace.
func (s *WorkspaceService) Members(ctx context.Context, workspaceID uuid.UUID, requester *model.User) ([]*model.Membership, error) {
	if _, err := s.workspaceRepo.FindByID(ctx, workspaceID); err != nil {
		return nil, err
	}
	if !s.access.CanView(ctx, requester, workspaceID) {
		return nil, domain.ErrPermissionDenied
	}
	return s.membershipRepo.FindAcceptedByWorkspace(ctx, workspaceID)
}

type UpdateWorkspaceInput struct {
	ID           uuid.UUID          `json:"id" validate:"required"`
	Name         string             `json:"name" validate:"required,min=2,max=100"`
	Description  string             `json:"description" validate:"max=1000"`
	PrivacyLevel model.PrivacyLevel `json:"privacy_level"`
}

// Update edits workspace name, description and privacy level. Admins only.
func (s *WorkspaceService) Update(ctx context.Context, input UpdateWorkspaceInput, requester *model.User) (*model.Workspace, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	workspace, err := s.workspaceRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if !s.access.IsAdmin(ctx, requester, workspace.ID) {
		return nil, domain.ErrPermissionDenied
	}

	workspace.Name = input.Name
	workspace.Description = input.Description
	if input.PrivacyLevel != "" {
		workspace.PrivacyLevel = input.PrivacyLevel
	}
	workspace.LastUpdated = time.Now()

	if err := s.workspaceRepo.Update(ctx, workspace); err != nil {
		return nil, fmt.Errorf("updating workspace: %w", err)
	}

	return workspace, nil
}

// Deactivate soft-deletes the workspace. Only the creator may do this.
// Memberships and tasks are untouched; filtering on IsActive is the
// caller's concern.
func (s *WorkspaceService) Deactivate(ctx context.Context, workspaceID uuid.UUID, requester *model.User) error {
	workspace, err := s.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		return err
	}

	if workspace.CreatorID != requester.ID {
		return domain.ErrPermissionDenied
	}

	workspace.IsActive = false
	workspace.LastUpdated = time.Now()

	if err := s.workspaceRepo.Update(ctx, workspace); err != nil {
		return fmt.Errorf("deactivating workspace: %w", err)
	}

	return nil
}

func validMemberRole(role model.MemberRole) bool {
	switch role {
	case model.RoleAdmin, model.RoleMember, model.RoleViewer:
		return true
	default:
		return false
	}
}

// Invite enrolls the user behind targetEmail as a member of the workspace.
// Invitations are auto-accepted: the membership row is written with status
// ACCEPTED and a joined timestamp, and no separate accept step exists.
// Re-inviting an existing member or invitee is an error, not a no-op.
func (s *WorkspaceService) Invite(ctx context.Context, workspaceID uuid.UUID, targetEmail string, role model.MemberRole, inviter *model.User) (*model.Membership, error) {
	workspace, err := s.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	if !s.access.IsAdmin(ctx, inviter, workspaceID) {
		return nil, domain.ErrPermissionDenied
	}

	if !validMemberRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}

	target, err := s.userRepo.FindByEmail(ctx, targetEmail)
	if err != nil {
		return nil, err
	}

	existing, err := s.membershipRepo.FindByWorkspaceAndUser(ctx, workspaceID, target.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("checking existing membership: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyMember
	}

	now := time.Now()
	inviterID := inviter.ID
	membership := &model.Membership{
		WorkspaceID:      workspaceID,
		UserID:           target.ID,
		Role:             role,
		InvitationStatus: model.InvitationAccepted,
		InvitedAt:        now,
		JoinedAt:         &now,
		InvitedByUserID:  &inviterID,
	}

	// The unique index backstops the read-then-insert race: a concurrent
	// duplicate comes back as ErrAlreadyMember from Create.
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, notify.KindMembershipInvited, target, notify.Payload{
		WorkspaceName: workspace.Name,
		InviterName:   inviter.DisplayName(),
	})

	return membership, nil
}

// InviteSummary reports per-email outcomes of a batch invite.
type InviteSummary struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// InviteMany processes each email independently; one failure does not abort
// the rest. The admin check runs once up front so a non-admin caller gets a
// single PermissionDenied instead of one failure per email.
func (s *WorkspaceService) InviteMany(ctx context.Context, workspaceID uuid.UUID, emails []string, role model.MemberRole, inviter *model.User) (InviteSummary, error) {
	if !s.access.IsAdmin(ctx, inviter, workspaceID) {
		return InviteSummary{}, domain.ErrPermissionDenied
	}

	var summary InviteSummary
	for _, email := range emails {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}

		if _, err := s.Invite(ctx, workspaceID, email, role, inviter); err != nil {
			slog.WarnContext(ctx, "Failed to invite user", "email", email, "workspace_id", workspaceID, "error", err)
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}

	return summary, nil
}
