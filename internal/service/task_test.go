package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/researchsync/researchsync/internal/domain"
	"github.com/researchsync/researchsync/internal/mocks"
	"github.com/researchsync/researchsync/internal/model"
	"github.com/researchsync/researchsync/internal/notify"
	"github.com/researchsync/researchsync/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type taskFixture struct {
	taskRepo       *mocks.MockTaskRepositoryIface
	workspaceRepo  *mocks.MockWorkspaceRepositoryIface
	membershipRepo *mocks.MockMembershipRepositoryIface
	userRepo       *mocks.MockUserRepositoryIface
	notifier       *mocks.MockNotifier
	svc            *service.TaskService
}

func newTaskFixture(ctrl *gomock.Controller) *taskFixture {
	f := &taskFixture{
		taskRepo:       mocks.NewMockTaskRepositoryIface(ctrl),
		workspaceRepo:  mocks.NewMockWorkspaceRepositoryIface(ctrl),
		membershipRepo: mocks.NewMockMembershipRepositoryIface(ctrl),
		userRepo:       mocks.NewMockUserRepositoryIface(ctrl),
		notifier:       mocks.NewMockNotifier(ctrl),
	}
	access := service.NewAccessService(f.workspaceRepo, f.membershipRepo)
	f.svc = service.NewTaskService(f.taskRepo, f.workspaceRepo, f.userRepo, access, f.notifier)
	return f
}

func acceptedMembership(workspaceID, userID uuid.UUID, role model.MemberRole) *model.Membership {
	now := time.Now()
	return &model.Membership{
		WorkspaceID:      workspaceID,
		UserID:           userID,
		Role:             role,
		InvitationStatus: model.InvitationAccepted,
		JoinedAt:         &now,
	}
}

func TestTaskCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := &model.User{ID: uuid.New(), Email: "alice@example.edu", FirstName: "Alice"}
	assignee := &model.User{ID: uuid.New(), Email: "bob@example.edu", FirstName: "Bob"}
	workspaceID := uuid.New()
	workspace := &model.Workspace{ID: workspaceID, Name: "Protein Folding", CreatorID: creator.ID, IsActive: true}

	t.Run("unassigned task defaults to pending and medium priority", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		gomock.InOrder(
			f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, creator.ID).
				Return(acceptedMembership(workspaceID, creator.ID, model.RoleAdmin), nil),
			f.taskRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, task *model.Task) error {
					assert.Equal(t, model.TaskPending, task.Status)
					assert.Equal(t, model.PriorityMedium, task.Priority)
					assert.Nil(t, task.AssignedToID)
					assert.Equal(t, creator.ID, task.CreatedByID)
					return nil
				}),
		)

		task, err := f.svc.Create(context.Background(), service.CreateTaskInput{
			WorkspaceID: workspaceID,
			Title:       "Sequence alignment",
		}, creator)

		assert.NoError(t, err)
		assert.NotNil(t, task)
	})

	t.Run("initial assignee is notified exactly once", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		gomock.InOrder(
			f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, creator.ID).
				Return(acceptedMembership(workspaceID, creator.ID, model.RoleAdmin), nil),
			f.userRepo.EXPECT().FindByID(gomock.Any(), assignee.ID).Return(assignee, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, assignee.ID).
				Return(acceptedMembership(workspaceID, assignee.ID, model.RoleMember), nil),
			f.taskRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			f.notifier.EXPECT().
				Notify(gomock.Any(), notify.KindTaskAssigned, assignee, gomock.Any()).
				Times(1),
		)

		assigneeID := assignee.ID
		task, err := f.svc.Create(context.Background(), service.CreateTaskInput{
			WorkspaceID:  workspaceID,
			Title:        "Sequence alignment",
			AssignedToID: &assigneeID,
			Priority:     model.PriorityHigh,
		}, creator)

		assert.NoError(t, err)
		assert.NotNil(t, task)
	})

	t.Run("assignee without accepted membership is rejected", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		gomock.InOrder(
			f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, creator.ID).
				Return(acceptedMembership(workspaceID, creator.ID, model.RoleAdmin), nil),
			f.userRepo.EXPECT().FindByID(gomock.Any(), assignee.ID).Return(assignee, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, assignee.ID).
				Return(nil, domain.ErrNotFound),
		)

		assigneeID := assignee.ID
		_, err := f.svc.Create(context.Background(), service.CreateTaskInput{
			WorkspaceID:  workspaceID,
			Title:        "Sequence alignment",
			AssignedToID: &assigneeID,
		}, creator)

		assert.ErrorIs(t, err, domain.ErrNotAMember)
	})

	t.Run("non-member cannot create", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		stranger := &model.User{ID: uuid.New(), Email: "eve@example.edu"}
		gomock.InOrder(
			f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, stranger.ID).
				Return(nil, domain.ErrNotFound),
		)

		_, err := f.svc.Create(context.Background(), service.CreateTaskInput{
			WorkspaceID: workspaceID,
			Title:       "Sequence alignment",
		}, stranger)

		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})
}

func TestTaskAssign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := &model.User{ID: uuid.New(), Email: "alice@example.edu", FirstName: "Alice"}
	assignee := &model.User{ID: uuid.New(), Email: "bob@example.edu", FirstName: "Bob"}
	workspaceID := uuid.New()
	workspace := &model.Workspace{ID: workspaceID, Name: "Protein Folding", CreatorID: creator.ID, IsActive: true}
	taskID := uuid.New()

	newTask := func() *model.Task {
		return &model.Task{
			ID:          taskID,
			WorkspaceID: workspaceID,
			Title:       "Sequence alignment",
			CreatedByID: creator.ID,
			Status:      model.TaskPending,
			Priority:    model.PriorityMedium,
		}
	}

	t.Run("task creator assigns an accepted member", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		gomock.InOrder(
			f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(newTask(), nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, creator.ID).
				Return(acceptedMembership(workspaceID, creator.ID, model.RoleAdmin), nil),
			f.userRepo.EXPECT().FindByID(gomock.Any(), assignee.ID).Return(assignee, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, assignee.ID).
				Return(acceptedMembership(workspaceID, assignee.ID, model.RoleMember), nil),
			f.taskRepo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, task *model.Task) error {
					assert.NotNil(t, task.AssignedToID)
					assert.Equal(t, assignee.ID, *task.AssignedToID)
					return nil
				}),
			f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil),
			f.notifier.EXPECT().
				Notify(gomock.Any(), notify.KindTaskAssigned, assignee, gomock.Any()).
				Times(1),
		)

		task, err := f.svc.Assign(context.Background(), taskID, assignee.ID, creator)
		assert.NoError(t, err)
		assert.NotNil(t, task.AssignedToID)
	})

	t.Run("pending invitee cannot be assigned", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		gomock.InOrder(
			f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(newTask(), nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, creator.ID).
				Return(acceptedMembership(workspaceID, creator.ID, model.RoleAdmin), nil),
			f.userRepo.EXPECT().FindByID(gomock.Any(), assignee.ID).Return(assignee, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, assignee.ID).
				Return(&model.Membership{
					WorkspaceID:      workspaceID,
					UserID:           assignee.ID,
					Role:             model.RoleMember,
					InvitationStatus: model.InvitationPending,
				}, nil),
		)

		_, err := f.svc.Assign(context.Background(), taskID, assignee.ID, creator)
		assert.ErrorIs(t, err, domain.ErrNotAMember)
	})

	t.Run("plain member who is not the creator cannot assign", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		member := &model.User{ID: uuid.New(), Email: "carol@example.edu"}
		gomock.InOrder(
			f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(newTask(), nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, member.ID).
				Return(acceptedMembership(workspaceID, member.ID, model.RoleMember), nil),
		)

		_, err := f.svc.Assign(context.Background(), taskID, assignee.ID, member)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})
}

func TestTaskUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	member := &model.User{ID: uuid.New(), Email: "bob@example.edu"}
	workspaceID := uuid.New()
	taskID := uuid.New()

	taskWithStatus := func(status model.TaskStatus) *model.Task {
		return &model.Task{
			ID:          taskID,
			WorkspaceID: workspaceID,
			Title:       "Sequence alignment",
			CreatedByID: member.ID,
			Status:      status,
			Priority:    model.PriorityMedium,
		}
	}

	expectMember := func(f *taskFixture) {
		f.membershipRepo.EXPECT().
			FindByWorkspaceAndUser(gomock.Any(), workspaceID, member.ID).
			Return(acceptedMembership(workspaceID, member.ID, model.RoleMember), nil)
	}

	t.Run("completing sets the completion timestamp", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(taskWithStatus(model.TaskInProgress), nil)
		expectMember(f)
		f.taskRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *model.Task) error {
				assert.Equal(t, model.TaskCompleted, task.Status)
				assert.NotNil(t, task.CompletedAt)
				return nil
			})

		task, err := f.svc.UpdateStatus(context.Background(), taskID, model.TaskCompleted, member)
		assert.NoError(t, err)
		assert.NotNil(t, task.CompletedAt)
	})

	t.Run("pending cannot jump straight to completed", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(taskWithStatus(model.TaskPending), nil)
		expectMember(f)

		_, err := f.svc.UpdateStatus(context.Background(), taskID, model.TaskCompleted, member)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("completed task cannot be reopened", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(taskWithStatus(model.TaskCompleted), nil)
		expectMember(f)

		_, err := f.svc.UpdateStatus(context.Background(), taskID, model.TaskInProgress, member)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("same-status update is rejected", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(taskWithStatus(model.TaskInProgress), nil)
		expectMember(f)

		_, err := f.svc.UpdateStatus(context.Background(), taskID, model.TaskInProgress, member)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("non-member cannot update status", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		stranger := &model.User{ID: uuid.New(), Email: "eve@example.edu"}
		f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(taskWithStatus(model.TaskPending), nil)
		f.membershipRepo.EXPECT().
			FindByWorkspaceAndUser(gomock.Any(), workspaceID, stranger.ID).
			Return(nil, domain.ErrNotFound)

		_, err := f.svc.UpdateStatus(context.Background(), taskID, model.TaskInProgress, stranger)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})
}

func TestTaskUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := &model.User{ID: uuid.New(), Email: "alice@example.edu"}
	workspaceID := uuid.New()
	taskID := uuid.New()
	due := time.Now().Add(48 * time.Hour)

	taskWithDue := func() *model.Task {
		return &model.Task{
			ID:          taskID,
			WorkspaceID: workspaceID,
			Title:       "Sequence alignment",
			CreatedByID: creator.ID,
			Status:      model.TaskPending,
			Priority:    model.PriorityHigh,
			DueAt:       &due,
		}
	}

	expectCreatorMember := func(f *taskFixture) {
		f.membershipRepo.EXPECT().
			FindByWorkspaceAndUser(gomock.Any(), workspaceID, creator.ID).
			Return(acceptedMembership(workspaceID, creator.ID, model.RoleMember), nil)
	}

	t.Run("title-only edit keeps due date and priority", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(taskWithDue(), nil)
		expectCreatorMember(f)
		f.taskRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *model.Task) error {
				assert.Equal(t, "Structure prediction", task.Title)
				assert.Equal(t, model.PriorityHigh, task.Priority)
				assert.NotNil(t, task.DueAt)
				assert.True(t, task.DueAt.Equal(due))
				return nil
			})

		_, err := f.svc.Update(context.Background(), service.UpdateTaskInput{
			ID:    taskID,
			Title: "Structure prediction",
		}, creator)
		assert.NoError(t, err)
	})

	t.Run("new due date replaces the old one", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		later := due.Add(72 * time.Hour)
		f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(taskWithDue(), nil)
		expectCreatorMember(f)
		f.taskRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *model.Task) error {
				assert.NotNil(t, task.DueAt)
				assert.True(t, task.DueAt.Equal(later))
				return nil
			})

		_, err := f.svc.Update(context.Background(), service.UpdateTaskInput{
			ID:    taskID,
			Title: "Sequence alignment",
			DueAt: &later,
		}, creator)
		assert.NoError(t, err)
	})

	t.Run("clearing the due date is explicit", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(taskWithDue(), nil)
		expectCreatorMember(f)
		f.taskRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *model.Task) error {
				assert.Nil(t, task.DueAt)
				return nil
			})

		_, err := f.svc.Update(context.Background(), service.UpdateTaskInput{
			ID:         taskID,
			Title:      "Sequence alignment",
			ClearDueAt: true,
		}, creator)
		assert.NoError(t, err)
	})
}

func TestTaskDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := &model.User{ID: uuid.New(), Email: "alice@example.edu"}
	workspaceID := uuid.New()
	taskID := uuid.New()
	task := &model.Task{
		ID:          taskID,
		WorkspaceID: workspaceID,
		Title:       "Sequence alignment",
		CreatedByID: creator.ID,
		Status:      model.TaskPending,
	}

	t.Run("creator deletes", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		gomock.InOrder(
			f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(task, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, creator.ID).
				Return(acceptedMembership(workspaceID, creator.ID, model.RoleMember), nil),
			f.taskRepo.EXPECT().Delete(gomock.Any(), taskID).Return(nil),
		)

		err := f.svc.Delete(context.Background(), taskID, creator)
		assert.NoError(t, err)
	})

	t.Run("assignee cannot delete", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		assignee := &model.User{ID: uuid.New(), Email: "bob@example.edu"}
		assigneeID := assignee.ID
		assigned := *task
		assigned.AssignedToID = &assigneeID

		gomock.InOrder(
			f.taskRepo.EXPECT().FindByID(gomock.Any(), taskID).Return(&assigned, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, assignee.ID).
				Return(acceptedMembership(workspaceID, assignee.ID, model.RoleMember), nil),
		)

		err := f.svc.Delete(context.Background(), taskID, assignee)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})
}

func TestSendDeadlineReminders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assignee := &model.User{ID: uuid.New(), Email: "bob@example.edu", FirstName: "Bob"}
	workspaceID := uuid.New()
	workspace := &model.Workspace{ID: workspaceID, Name: "Protein Folding", IsActive: true}
	assigneeID := assignee.ID
	due := time.Now().Add(6 * time.Hour)

	t.Run("alerts only open assigned tasks", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		tasks := []*model.Task{
			{ID: uuid.New(), WorkspaceID: workspaceID, Title: "Assigned and open", AssignedToID: &assigneeID, Status: model.TaskInProgress, DueAt: &due},
			{ID: uuid.New(), WorkspaceID: workspaceID, Title: "Unassigned", Status: model.TaskPending, DueAt: &due},
			{ID: uuid.New(), WorkspaceID: workspaceID, Title: "Already done", AssignedToID: &assigneeID, Status: model.TaskCompleted, DueAt: &due},
		}

		f.taskRepo.EXPECT().FindDueBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(tasks, nil)
		f.userRepo.EXPECT().FindByID(gomock.Any(), assignee.ID).Return(assignee, nil)
		f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil)
		f.notifier.EXPECT().
			Notify(gomock.Any(), notify.KindDeadlineAlert, assignee, gomock.Any()).
			Times(1)

		sent, err := f.svc.SendDeadlineReminders(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("nothing due", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.taskRepo.EXPECT().FindDueBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		sent, err := f.svc.SendDeadlineReminders(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 0, sent)
	})
}
