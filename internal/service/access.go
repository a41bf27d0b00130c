// internal/service/access.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/researchsync/researchsync/internal/model"
	"github.com/researchsync/researchsync/internal/repository"
)

// AccessService answers the authorization questions every workflow asks
// before mutating a workspace or its resources. All three predicates are
// read-only total functions: any lookup failure makes them answer false
// rather than propagate an error, so callers can branch without error
// handling. A false answer is therefore not proof that the workspace
// exists; callers that need the distinction do their own existence check.
type AccessService struct {
	workspaceRepo  repository.WorkspaceRepositoryIface
	membershipRepo repository.MembershipRepositoryIface
}

func NewAccessService(
	workspaceRepo repository.WorkspaceRepositoryIface,
	membershipRepo repository.MembershipRepositoryIface,
) *AccessService {
	return &AccessService{
		workspaceRepo:  workspaceRepo,
		membershipRepo: membershipRepo,
	}
}

// CanView reports whether the user is the workspace creator or holds an
// accepted membership of any role.
func (s *AccessService) CanView(ctx context.Context, user *model.User, workspaceID uuid.UUID) bool {
	if user == nil {
		return false
	}

	workspace, err := s.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		return false
	}

	if workspace.CreatorID == user.ID {
		return true
	}

	membership, err := s.membershipRepo.FindByWorkspaceAndUser(ctx, workspaceID, user.ID)
	if err != nil {
		return false
	}

	return membership.IsAccepted()
}

// IsAdmin reports whether the user holds an ADMIN membership in the
// workspace. The creator is not implicitly admin; workspace creation
// enrolls the creator as an ADMIN member, which is what makes this hold
// for creators in practice.
func (s *AccessService) IsAdmin(ctx context.Context, user *model.User, workspaceID uuid.UUID) bool {
	if user == nil {
		return false
	}

	membership, err := s.membershipRepo.FindByWorkspaceAndUser(ctx, workspaceID, user.ID)
	if err != nil {
		return false
	}

	return membership.IsAdmin()
}

// IsMember reports whether any membership row exists for the pair,
// regardless of role or invitation status.
func (s *AccessService) IsMember(ctx context.Context, user *model.User, workspaceID uuid.UUID) bool {
	if user == nil {
		return false
	}

	_, err := s.membershipRepo.FindByWorkspaceAndUser(ctx, workspaceID, user.ID)
	return err == nil
}

// HasAcceptedMembership reports whether the user holds an ACCEPTED
// membership in the workspace. Assignment uses this, not IsMember: a
// pending or declined invitee cannot receive tasks.
func (s *AccessService) HasAcceptedMembership(ctx context.Context, userID, workspaceID uuid.UUID) bool {
	membership, err := s.membershipRepo.FindByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		return false
	}
	return membership.IsAccepted()
}
