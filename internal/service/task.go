// internal/service/task.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/researchsync/researchsync/internal/domain"
	"github.com/researchsync/researchsync/internal/model"
	"github.com/researchsync/researchsync/internal/notify"
	"github.com/researchsync/researchsync/internal/repository"
)

// dueSoonWindow is how far ahead the deadline reminder sweep looks.
const dueSoonWindow = 24 * time.Hour

type TaskService struct {
	taskRepo      repository.TaskRepositoryIface
	workspaceRepo repository.WorkspaceRepositoryIface
	userRepo      repository.UserRepositoryIface
	access        *AccessService
	notifier      notify.Notifier
	validate      *validator.Validate
}

func NewTaskService(
	taskRepo repository.TaskRepositoryIface,
	workspaceRepo repository.WorkspaceRepositoryIface,
	userRepo repository.UserRepositoryIface,
	access *AccessService,
	notifier notify.Notifier,
) *TaskService {
	return &TaskService{
		taskRepo:      taskRepo,
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
		access:        access,
		notifier:      notifier,
		validate:      validator.New(),
	}
}

type CreateTaskInput struct {
	WorkspaceID  uuid.UUID          `json:"workspace_id" validate:"required"`
	Title        string             `json:"title" validate:"required,min=2,max=200"`
	Description  string             `json:"description" validate:"max=2000"`
	Priority     model.TaskPriority `json:"priority"`
	AssignedToID *uuid.UUID         `json:"assigned_to_id"`
	DueAt        *time.Time         `json:"due_at"`
}

// Create adds a task to a workspace. Any member (any role or invitation
// status) may create; an initial assignee must hold an accepted membership.
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput, creator *model.User) (*model.Task, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	workspace, err := s.workspaceRepo.FindByID(ctx, input.WorkspaceID)
	if err != nil {
		return nil, err
	}

	if !s.access.IsMember(ctx, creator, workspace.ID) {
		return nil, domain.ErrPermissionDenied
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	var assignee *model.User
	if input.AssignedToID != nil {
		assignee, err = s.userRepo.FindByID(ctx, *input.AssignedToID)
		if err != nil {
			return nil, err
		}
		if !s.access.HasAcceptedMembership(ctx, assignee.ID, workspace.ID) {
			return nil, domain.ErrNotAMember
		}
	}

	now := time.Now()
	task := &model.Task{
		WorkspaceID:  workspace.ID,
		Title:        input.Title,
		Description:  input.Description,
		AssignedToID: input.AssignedToID,
		CreatedByID:  creator.ID,
		Status:       model.TaskPending,
		Priority:     priority,
		DueAt:        input.DueAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	if assignee != nil {
		s.notifier.Notify(ctx, notify.KindTaskAssigned, assignee, notify.Payload{
			TaskTitle:     task.Title,
			WorkspaceName: workspace.Name,
		})
	}

	return task, nil
}

func (s *TaskService) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

// Get returns a task to a requester that can view its workspace.
func (s *TaskService) Get(ctx context.Context, taskID uuid.UUID, requester *model.User) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !s.access.CanView(ctx, requester, task.WorkspaceID) {
		return nil, domain.ErrPermissionDenied
	}
	return task, nil
}

// Assign sets the task's assignee. Allowed for workspace admins and the
// task creator; the assignee must hold an accepted membership in the task's
// workspace.
func (s *TaskService) Assign(ctx context.Context, taskID, assigneeID uuid.UUID, assigner *model.User) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !s.access.IsAdmin(ctx, assigner, task.WorkspaceID) && assigner.ID != task.CreatedByID {
		return nil, domain.ErrPermissionDenied
	}

	assignee, err := s.userRepo.FindByID(ctx, assigneeID)
	if err != nil {
		return nil, err
	}

	if !s.access.HasAcceptedMembership(ctx, assignee.ID, task.WorkspaceID) {
		return nil, domain.ErrNotAMember
	}

	task.AssignedToID = &assignee.ID
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("assigning task: %w", err)
	}

	workspaceName := ""
	if workspace, err := s.workspaceRepo.FindByID(ctx, task.WorkspaceID); err == nil {
		workspaceName = workspace.Name
	}

	s.notifier.Notify(ctx, notify.KindTaskAssigned, assignee, notify.Payload{
		TaskTitle:     task.Title,
		WorkspaceName: workspaceName,
	})

	return task, nil
}

// UpdateStatus moves the task through its status machine. Any workspace
// member may update; the transition table is enforced, so terminal tasks
// reject every change and CompletedAt is written exactly when the task
// enters COMPLETED.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID uuid.UUID, status model.TaskStatus, updater *model.User) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !s.access.IsMember(ctx, updater, task.WorkspaceID) {
		return nil, domain.ErrPermissionDenied
	}

	if !task.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, task.Status, status)
	}

	now := time.Now()
	task.Status = status
	task.UpdatedAt = now
	if status == model.TaskCompleted {
		task.CompletedAt = &now
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("updating task status: %w", err)
	}

	return task, nil
}

type UpdateTaskInput struct {
	ID          uuid.UUID          `json:"id" validate:"required"`
	Title       string             `json:"title" validate:"required,min=2,max=200"`
	Description string             `json:"description" validate:"max=2000"`
	Priority    model.TaskPriority `json:"priority"`
	DueAt       *time.Time         `json:"due_at"`
	ClearDueAt  bool               `json:"clear_due_at"`
}

// Update edits title, description, priority and due date. Allowed for
// workspace admins, the task creator, and the current assignee. Zero-value
// Priority and nil DueAt leave the stored values unchanged; removing a
// deadline takes an explicit ClearDueAt.
func (s *TaskService) Update(ctx context.Context, input UpdateTaskInput, updater *model.User) (*model.Task, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	task, err := s.taskRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	isAssignee := task.AssignedToID != nil && *task.AssignedToID == updater.ID
	if !s.access.IsAdmin(ctx, updater, task.WorkspaceID) && updater.ID != task.CreatedByID && !isAssignee {
		return nil, domain.ErrPermissionDenied
	}

	task.Title = input.Title
	task.Description = input.Description
	if input.Priority != "" {
		task.Priority = input.Priority
	}
	if input.ClearDueAt {
		task.DueAt = nil
	} else if input.DueAt != nil {
		task.DueAt = input.DueAt
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	return task, nil
}

// Delete hard-deletes the task. Allowed for workspace admins and the task
// creator.
func (s *TaskService) Delete(ctx context.Context, taskID uuid.UUID, deleter *model.User) error {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return err
	}

	if !s.access.IsAdmin(ctx, deleter, task.WorkspaceID) && deleter.ID != task.CreatedByID {
		return domain.ErrPermissionDenied
	}

	if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	return nil
}

// ListByWorkspace returns a workspace's tasks to a requester that can view
// the workspace.
func (s *TaskService) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID, requester *model.User) ([]*model.Task, error) {
	if _, err := s.workspaceRepo.FindByID(ctx, workspaceID); err != nil {
		return nil, err
	}
	if !s.access.CanView(ctx, requester, workspaceID) {
		return nil, domain.ErrPermissionDenied
	}
	return s.taskRepo.FindByWorkspace(ctx, workspaceID)
}

func (s *TaskService) ListByWorkspaceAndStatus(ctx context.Context, workspaceID uuid.UUID, status model.TaskStatus, requester *model.User) ([]*model.Task, error) {
	if _, err := s.workspaceRepo.FindByID(ctx, workspaceID); err != nil {
		return nil, err
	}
	if !s.access.CanView(ctx, requester, workspaceID) {
		return nil, domain.ErrPermissionDenied
	}
	return s.taskRepo.FindByWorkspaceAndStatus(ctx, workspaceID, status)
}

// ListAssigned returns the user's own assigned tasks.
func (s *TaskService) ListAssigned(ctx context.Context, user *model.User) ([]*model.Task, error) {
	return s.taskRepo.FindByAssignee(ctx, user.ID)
}

// ListActiveAssigned returns the user's assigned tasks that are neither
// completed nor cancelled.
func (s *TaskService) ListActiveAssigned(ctx context.Context, user *model.User) ([]*model.Task, error) {
	return s.taskRepo.FindActiveByAssignee(ctx, user.ID)
}

func (s *TaskService) ListCreated(ctx context.Context, user *model.User) ([]*model.Task, error) {
	return s.taskRepo.FindByCreator(ctx, user.ID)
}

func (s *TaskService) SearchInWorkspace(ctx context.Context, workspaceID uuid.UUID, term string, requester *model.User) ([]*model.Task, error) {
	if _, err := s.workspaceRepo.FindByID(ctx, workspaceID); err != nil {
		return nil, err
	}
	if !s.access.CanView(ctx, requester, workspaceID) {
		return nil, domain.ErrPermissionDenied
	}
	return s.taskRepo.SearchInWorkspace(ctx, workspaceID, term)
}

func (s *TaskService) CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	return s.taskRepo.CountByWorkspace(ctx, workspaceID)
}

func (s *TaskService) CountCompletedByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	return s.taskRepo.CountByWorkspaceAndStatus(ctx, workspaceID, model.TaskCompleted)
}

func (s *TaskService) ListOverdue(ctx context.Context) ([]*model.Task, error) {
	return s.taskRepo.FindOverdue(ctx, time.Now())
}

// SendDeadlineReminders notifies assignees of tasks due within the next 24
// hours. Invoked by an external cron-style caller; it is a read query plus
// a loop of best-effort notifications, and returns how many alerts were
// attempted.
func (s *TaskService) SendDeadlineReminders(ctx context.Context) (int, error) {
	now := time.Now()
	tasks, err := s.taskRepo.FindDueBetween(ctx, now, now.Add(dueSoonWindow))
	if err != nil {
		return 0, fmt.Errorf("finding tasks due soon: %w", err)
	}

	sent := 0
	for _, task := range tasks {
		if task.AssignedToID == nil || task.Status.IsTerminal() {
			continue
		}

		assignee, err := s.userRepo.FindByID(ctx, *task.AssignedToID)
		if err != nil {
			slog.WarnContext(ctx, "Skipping deadline alert, assignee lookup failed", "task_id", task.ID, "error", err)
			continue
		}

		workspaceName := ""
		if workspace, err := s.workspaceRepo.FindByID(ctx, task.WorkspaceID); err == nil {
			workspaceName = workspace.Name
		}

		s.notifier.Notify(ctx, notify.KindDeadlineAlert, assignee, notify.Payload{
			TaskTitle:     task.Title,
			WorkspaceName: workspaceName,
		})
		sent++
	}

	return sent, nil
}
