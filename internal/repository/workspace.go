// internal/repository/workspace.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/researchsync/researchsync/internal/domain"
	"github.com/researchsync/researchsync/internal/model"
	"gorm.io/gorm"
)

type WorkspaceRepositoryIface interface {
	CreateWithOwner(ctx context.Context, workspace *model.Workspace, owner *model.Membership) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Workspace, error)
	FindByUserInvolvement(ctx context.Context, userID uuid.UUID) ([]*model.Workspace, error)
	FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*model.Workspace, error)
	SearchByName(ctx context.Context, term string) ([]*model.Workspace, error)
	CountByUserInvolvement(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, workspace *model.Workspace) error
}

type WorkspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// CreateWithOwner persists a workspace together with its creator's bootstrap
// membership in a single transaction. A workspace row without an admin member
// must never become visible, so both writes succeed or neither does.
func (r *WorkspaceRepository) CreateWithOwner(ctx context.Context, workspace *model.Workspace, owner *model.Membership) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workspace).Error; err != nil {
			return fmt.Errorf("creating workspace: %w", err)
		}

		owner.WorkspaceID = workspace.ID
		if err := tx.Create(owner).Error; err != nil {
			return fmt.Errorf("creating owner membership: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *WorkspaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Workspace, error) {
	var workspace model.Workspace
	if err := r.db.WithContext(ctx).First(&workspace, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("finding workspace: %w", err)
	}
	return &workspace, nil
}

// FindByUserInvolvement returns workspaces the user created or holds an
// accepted membership in, most recently created first.
func (r *WorkspaceRepository) FindByUserInvolvement(ctx context.Context, userID uuid.UUID) ([]*model.Workspace, error) {
	var workspaces []*model.Workspace
	err := r.db.WithContext(ctx).
		Joins("LEFT JOIN memberships ON workspaces.id = memberships.workspace_id AND memberships.user_id = ?", userID).
		Where("workspaces.creator_id = ? OR memberships.invitation_status = ?", userID, model.InvitationAccepted).
		Distinct().
		Order("workspaces.created_at DESC").
		Find(&workspaces).Error
	if err != nil {
		return nil, fmt.Errorf("finding workspaces by involvement: %w", err)
	}
	return workspaces, nil
}

func (r *WorkspaceRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*model.Workspace, error) {
	var workspaces []*model.Workspace
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&workspaces).Error
	if err != nil {
		return nil, fmt.Errorf("finding workspaces by creator: %w", err)
	}
	return workspaces, nil
}

func (r *WorkspaceRepository) SearchByName(ctx context.Context, term string) ([]*model.Workspace, error) {
	var workspaces []*model.Workspace
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Find(&workspaces).Error
	if err != nil {
		return nil, fmt.Errorf("searching workspaces: %w", err)
	}
	return workspaces, nil
}

func (r *WorkspaceRepository) CountByUserInvolvement(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Workspace{}).
		Joins("LEFT JOIN memberships ON workspaces.id = memberships.workspace_id AND memberships.user_id = ?", userID).
		Where("workspaces.creator_id = ? OR memberships.invitation_status = ?", userID, model.InvitationAccepted).
		Distinct("workspaces.id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting workspaces by involvement: %w", err)
	}
	return count, nil
}

func (r *WorkspaceRepository) Update(ctx context.Context, workspace *model.Workspace) error {
	if err := r.db.WithContext(ctx).Save(workspace).Error; err != nil {
		return fmt.Errorf("updating workspace: %w", err)
	}
	return nil
}
