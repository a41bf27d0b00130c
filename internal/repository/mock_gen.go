// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./workspace.go -destination=../mocks/mock_workspace_repository.go -package=mocks WorkspaceRepositoryIface
//go:generate mockgen -source=./membership.go -destination=../mocks/mock_membership_repository.go -package=mocks MembershipRepositoryIface
//go:generate mockgen -source=./task.go -destination=../mocks/mock_task_repository.go -package=mocks TaskRepositoryIface
//go:generate mockgen -source=../notify/notifier.go -destination=../mocks/mock_notifier.go -package=mocks Notifier
