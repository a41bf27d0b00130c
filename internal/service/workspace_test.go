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

type workspaceFixture struct {
	workspaceRepo  *mocks.MockWorkspaceRepositoryIface
	membershipRepo *mocks.MockMembershipRepositoryIface
	userRepo       *mocks.MockUserRepositoryIface
	notifier       *mocks.MockNotifier
	svc            *service.WorkspaceService
}

func newWorkspaceFixture(ctrl *gomock.Controller) *workspaceFixture {
	f := &workspaceFixture{
		workspaceRepo:  mocks.NewMockWorkspaceRepositoryIface(ctrl),
		membershipRepo: mocks.NewMockMembershipRepositoryIface(ctrl),
		userRepo:       mocks.NewMockUserRepositoryIface(ctrl),
		notifier:       mocks.NewMockNotifier(ctrl),
	}
	access := service.NewAccessService(f.workspaceRepo, f.membershipRepo)
	f.svc = service.NewWorkspaceService(f.workspaceRepo, f.membershipRepo, f.userRepo, access, f.notifier)
	return f
}

func adminMembership(workspaceID, userID uuid.UUID) *model.Membership {
	now := time.Now()
	return &model.Membership{
		WorkspaceID:      workspaceID,
		UserID:           userID,
		Role:             model.RoleAdmin,
		InvitationStatus: model.InvitationAccepted,
		JoinedAt:         &now,
	}
}

func TestWorkspaceCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := &model.User{ID: uuid.New(), Email: "alice@example.edu", FirstName: "Alice"}

	t.Run("creator becomes accepted admin member", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)
		f.workspaceRepo.EXPECT().
			CreateWithOwner(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, workspace *model.Workspace, owner *model.Membership) error {
				assert.Equal(t, "Protein Folding", workspace.Name)
				assert.Equal(t, creator.ID, workspace.CreatorID)
				assert.True(t, workspace.IsActive)
				assert.Equal(t, model.PrivacyPrivate, workspace.PrivacyLevel)

				assert.Equal(t, creator.ID, owner.UserID)
				assert.Equal(t, model.RoleAdmin, owner.Role)
				assert.Equal(t, model.InvitationAccepted, owner.InvitationStatus)
				assert.NotNil(t, owner.JoinedAt)
				return nil
			})

		workspace, err := f.svc.Create(context.Background(), service.CreateWorkspaceInput{
			Name:        "Protein Folding",
			Description: "Structure prediction experiments",
		}, creator)

		assert.NoError(t, err)
		assert.NotNil(t, workspace)
	})

	t.Run("name too short", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)

		_, err := f.svc.Create(context.Background(), service.CreateWorkspaceInput{Name: "x"}, creator)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestWorkspaceInvite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &model.User{ID: uuid.New(), Email: "alice@example.edu", FirstName: "Alice", LastName: "Liddell"}
	target := &model.User{ID: uuid.New(), Email: "bob@example.edu", FirstName: "Bob"}
	workspaceID := uuid.New()
	workspace := &model.Workspace{ID: workspaceID, Name: "Protein Folding", CreatorID: admin.ID, IsActive: true}

	t.Run("admin invites, membership auto-accepted", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)
		gomock.InOrder(
			f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, admin.ID).
				Return(adminMembership(workspaceID, admin.ID), nil),
			f.userRepo.EXPECT().FindByEmail(gomock.Any(), target.Email).Return(target, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, target.ID).
				Return(nil, domain.ErrNotFound),
			f.membershipRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, m *model.Membership) error {
					assert.Equal(t, model.InvitationAccepted, m.InvitationStatus)
					assert.Equal(t, model.RoleMember, m.Role)
					assert.NotNil(t, m.JoinedAt)
					assert.NotNil(t, m.InvitedByUserID)
					assert.Equal(t, admin.ID, *m.InvitedByUserID)
					return nil
				}),
			f.notifier.EXPECT().
				Notify(gomock.Any(), notify.KindMembershipInvited, target, gomock.Any()),
		)

		membership, err := f.svc.Invite(context.Background(), workspaceID, target.Email, model.RoleMember, admin)
		assert.NoError(t, err)
		assert.NotNil(t, membership)
	})

	t.Run("non-admin cannot invite", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)
		member := &model.User{ID: uuid.New(), Email: "carol@example.edu"}
		gomock.InOrder(
			f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, member.ID).
				Return(&model.Membership{
					WorkspaceID:      workspaceID,
					UserID:           member.ID,
					Role:             model.RoleMember,
					InvitationStatus: model.InvitationAccepted,
				}, nil),
		)

		_, err := f.svc.Invite(context.Background(), workspaceID, target.Email, model.RoleMember, member)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	t.Run("double invite is rejected", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)
		gomock.InOrder(
			f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, admin.ID).
				Return(adminMembership(workspaceID, admin.ID), nil),
			f.userRepo.EXPECT().FindByEmail(gomock.Any(), target.Email).Return(target, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, target.ID).
				Return(&model.Membership{
					WorkspaceID:      workspaceID,
					UserID:           target.ID,
					Role:             model.RoleMember,
					InvitationStatus: model.InvitationAccepted,
				}, nil),
		)

		_, err := f.svc.Invite(context.Background(), workspaceID, target.Email, model.RoleMember, admin)
		assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	})

	t.Run("concurrent duplicate surfaces from the unique index", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)
		gomock.InOrder(
			f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, admin.ID).
				Return(adminMembership(workspaceID, admin.ID), nil),
			f.userRepo.EXPECT().FindByEmail(gomock.Any(), target.Email).Return(target, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, target.ID).
				Return(nil, domain.ErrNotFound),
			f.membershipRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				Return(domain.ErrAlreadyMember),
		)

		_, err := f.svc.Invite(context.Background(), workspaceID, target.Email, model.RoleMember, admin)
		assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)
		gomock.InOrder(
			f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, admin.ID).
				Return(adminMembership(workspaceID, admin.ID), nil),
			f.userRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.edu").Return(nil, domain.ErrUserNotFound),
		)

		_, err := f.svc.Invite(context.Background(), workspaceID, "nobody@example.edu", model.RoleMember, admin)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("unknown role", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)
		gomock.InOrder(
			f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil),
			f.membershipRepo.EXPECT().
				FindByWorkspaceAndUser(gomock.Any(), workspaceID, admin.ID).
				Return(adminMembership(workspaceID, admin.ID), nil),
		)

		_, err := f.svc.Invite(context.Background(), workspaceID, target.Email, model.MemberRole("SUPERUSER"), admin)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestWorkspaceInviteMany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &model.User{ID: uuid.New(), Email: "alice@example.edu", FirstName: "Alice"}
	workspaceID := uuid.New()
	workspace := &model.Workspace{ID: workspaceID, Name: "Protein Folding", CreatorID: admin.ID, IsActive: true}

	t.Run("mixed outcomes are counted independently", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)
		bob := &model.User{ID: uuid.New(), Email: "bob@example.edu"}

		// Up-front admin check for the batch.
		f.membershipRepo.EXPECT().
			FindByWorkspaceAndUser(gomock.Any(), workspaceID, admin.ID).
			Return(adminMembership(workspaceID, admin.ID), nil).
			AnyTimes()
		f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil).AnyTimes()

		// bob succeeds.
		f.userRepo.EXPECT().FindByEmail(gomock.Any(), bob.Email).Return(bob, nil)
		f.membershipRepo.EXPECT().
			FindByWorkspaceAndUser(gomock.Any(), workspaceID, bob.ID).
			Return(nil, domain.ErrNotFound)
		f.membershipRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().Notify(gomock.Any(), notify.KindMembershipInvited, bob, gomock.Any())

		// nobody has no account.
		f.userRepo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.edu").Return(nil, domain.ErrUserNotFound)

		summary, err := f.svc.InviteMany(
			context.Background(),
			workspaceID,
			[]string{"bob@example.edu", "", "nobody@example.edu"},
			model.RoleMember,
			admin,
		)

		assert.NoError(t, err)
		assert.Equal(t, 1, summary.Succeeded)
		assert.Equal(t, 1, summary.Failed)
	})

	t.Run("non-admin gets a single permission error", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)
		stranger := &model.User{ID: uuid.New(), Email: "eve@example.edu"}
		f.membershipRepo.EXPECT().
			FindByWorkspaceAndUser(gomock.Any(), workspaceID, stranger.ID).
			Return(nil, domain.ErrNotFound)

		_, err := f.svc.InviteMany(context.Background(), workspaceID, []string{"bob@example.edu"}, model.RoleMember, stranger)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})
}

func TestWorkspaceDeactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := &model.User{ID: uuid.New(), Email: "alice@example.edu"}
	workspaceID := uuid.New()

	t.Run("creator deactivates", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)
		workspace := &model.Workspace{ID: workspaceID, Name: "Protein Folding", CreatorID: creator.ID, IsActive: true}
		gomock.InOrder(
			f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil),
			f.workspaceRepo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, w *model.Workspace) error {
					assert.False(t, w.IsActive)
					return nil
				}),
		)

		err := f.svc.Deactivate(context.Background(), workspaceID, creator)
		assert.NoError(t, err)
	})

	t.Run("admin member who is not the creator cannot deactivate", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)
		otherAdmin := &model.User{ID: uuid.New(), Email: "bob@example.edu"}
		workspace := &model.Workspace{ID: workspaceID, Name: "Protein Folding", CreatorID: creator.ID, IsActive: true}
		f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil)

		err := f.svc.Deactivate(context.Background(), workspaceID, otherAdmin)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})
}

func TestWorkspaceMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := &model.User{ID: uuid.New(), Email: "alice@example.edu"}
	stranger := &model.User{ID: uuid.New(), Email: "eve@example.edu"}
	workspaceID := uuid.New()
	workspace := &model.Workspace{ID: workspaceID, Name: "Protein Folding", CreatorID: creator.ID, IsActive: true}

	t.Run("viewer sees accepted members", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)
		members := []*model.Membership{adminMembership(workspaceID, creator.ID)}
		f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil).Times(2)
		f.membershipRepo.EXPECT().FindAcceptedByWorkspace(gomock.Any(), workspaceID).Return(members, nil)

		got, err := f.svc.Members(context.Background(), workspaceID, creator)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("outsider is denied", func(t *testing.T) {
		f := newWorkspaceFixture(ctrl)
		f.workspaceRepo.EXPECT().FindByID(gomock.Any(), workspaceID).Return(workspace, nil).Times(2)
		f.membershipRepo.EXPECT().
			FindByWorkspaceAndUser(gomock.Any(), workspaceID, stranger.ID).
			Return(nil, domain.ErrNotFound)

		_, err := f.svc.Members(context.Background(), workspaceID, stranger)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})
}
