// internal/repository/task.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/researchsync/researchsync/internal/domain"
	"github.com/researchsync/researchsync/internal/model"
	"gorm.io/gorm"
)

type TaskRepositoryIface interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error)
	FindByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*model.Task, error)
	FindByWorkspaceAndStatus(ctx context.Context, workspaceID uuid.UUID, status model.TaskStatus) ([]*model.Task, error)
	FindByAssignee(ctx context.Context, userID uuid.UUID) ([]*model.Task, error)
	FindActiveByAssignee(ctx context.Context, userID uuid.UUID) ([]*model.Task, error)
	FindByCreator(ctx context.Context, userID uuid.UUID) ([]*model.Task, error)
	FindDueBetween(ctx context.Context, from, to time.Time) ([]*model.Task, error)
	FindOverdue(ctx context.Context, now time.Time) ([]*model.Task, error)
	SearchInWorkspace(ctx context.Context, workspaceID uuid.UUID, term string) ([]*model.Task, error)
	CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error)
	CountByWorkspaceAndStatus(ctx context.Context, workspaceID uuid.UUID, status model.TaskStatus) (int64, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("creating task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("finding task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepository) FindByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("finding workspace tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByWorkspaceAndStatus(ctx context.Context, workspaceID uuid.UUID, status model.TaskStatus) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND status = ?", workspaceID, status).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("finding workspace tasks by status: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByAssignee(ctx context.Context, userID uuid.UUID) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.WithContext(ctx).
		Where("assigned_to_id = ?", userID).
		Order("due_at ASC NULLS LAST").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("finding assigned tasks: %w", err)
	}
	return tasks, nil
}

// FindActiveByAssignee returns the user's tasks that are neither completed
// nor cancelled.
func (r *TaskRepository) FindActiveByAssignee(ctx context.Context, userID uuid.UUID) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.WithContext(ctx).
		Where("assigned_to_id = ? AND status NOT IN ?", userID, []model.TaskStatus{model.TaskCompleted, model.TaskCancelled}).
		Order("due_at ASC NULLS LAST").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("finding active assigned tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindByCreator(ctx context.Context, userID uuid.UUID) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.WithContext(ctx).
		Where("created_by_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("finding created tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindDueBetween(ctx context.Context, from, to time.Time) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.WithContext(ctx).
		Where("due_at BETWEEN ? AND ?", from, to).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("finding tasks due between: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) FindOverdue(ctx context.Context, now time.Time) ([]*model.Task, error) {
	var tasks []*model.Task
	err := r.db.WithContext(ctx).
		Where("due_at < ? AND status NOT IN ?", now, []model.TaskStatus{model.TaskCompleted, model.TaskCancelled}).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("finding overdue tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) SearchInWorkspace(ctx context.Context, workspaceID uuid.UUID, term string) ([]*model.Task, error) {
	var tasks []*model.Task
	pattern := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND (title ILIKE ? OR description ILIKE ?)", workspaceID, pattern, pattern).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("searching workspace tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("workspace_id = ?", workspaceID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting workspace tasks: %w", err)
	}
	return count, nil
}

func (r *TaskRepository) CountByWorkspaceAndStatus(ctx context.Context, workspaceID uuid.UUID, status model.TaskStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("workspace_id = ? AND status = ?", workspaceID, status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting workspace tasks by status: %w", err)
	}
	return count, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

// Delete hard-deletes the task row. Tasks have no soft-delete, unlike
// workspaces.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}
