// internal/repository/membership.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/researchsync/researchsync/internal/domain"
	"github.com/researchsync/researchsync/internal/model"
	"gorm.io/gorm"
)

// Postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

type MembershipRepositoryIface interface {
	Create(ctx context.Context, membership *model.Membership) error
	FindByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (*model.Membership, error)
	FindByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*model.Membership, error)
	FindAcceptedByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*model.Membership, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error)
	CountAcceptedByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error)
	Update(ctx context.Context, membership *model.Membership) error
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create inserts a membership row. The composite unique index on
// (workspace_id, user_id) is the arbiter for concurrent duplicate invites:
// a unique violation surfaces as domain.ErrAlreadyMember, not a generic
// storage error.
func (r *MembershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("creating membership: %w", err)
	}
	return nil
}

func (r *MembershipRepository) FindByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (*model.Membership, error) {
	var membership model.Membership
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &membership, nil
}

func (r *MembershipRepository) FindByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*model.Membership, error) {
	var memberships []*model.Membership
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("finding workspace memberships: %w", err)
	}
	return memberships, nil
}

func (r *MembershipRepository) FindAcceptedByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*model.Membership, error) {
	var memberships []*model.Membership
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND invitation_status = ?", workspaceID, model.InvitationAccepted).
		Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("finding accepted memberships: %w", err)
	}
	return memberships, nil
}

func (r *MembershipRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Membership, error) {
	var memberships []*model.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("finding user memberships: %w", err)
	}
	return memberships, nil
}

func (r *MembershipRepository) CountAcceptedByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("workspace_id = ? AND invitation_status = ?", workspaceID, model.InvitationAccepted).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting accepted memberships: %w", err)
	}
	return count, nil
}

func (r *MembershipRepository) Update(ctx context.Context, membership *model.Membership) error {
	if err := r.db.WithContext(ctx).Save(membership).Error; err != nil {
		return fmt.Errorf("updating membership: %w", err)
	}
	return nil
}
