// internal/model/task.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskCancelled  TaskStatus = "CANCELLED"
)

// CanTransitionTo reports whether a status change to next is allowed.
// COMPLETED and CANCELLED are terminal; same-status writes are rejected.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	switch s {
	case TaskPending:
		return next == TaskInProgress || next == TaskCancelled
	case TaskInProgress:
		return next == TaskCompleted || next == TaskCancelled
	case TaskCompleted, TaskCancelled:
		return false
	default:
		return false
	}
}

// IsTerminal reports whether no further status change is possible.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskCompleted || s == TaskCancelled
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

// Task is a unit of work scoped to exactly one workspace. WorkspaceID is
// immutable after creation. CompletedAt is non-nil iff Status == COMPLETED.
type Task struct {
	ID              uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WorkspaceID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Title           string       `gorm:"type:text;not null" json:"title"`
	Description     string       `gorm:"type:text" json:"description"`
	AssignedToID    *uuid.UUID   `gorm:"type:uuid;index" json:"assigned_to_id"`
	CreatedByID     uuid.UUID    `gorm:"type:uuid;not null" json:"created_by_id"`
	Status          TaskStatus   `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	Priority        TaskPriority `gorm:"type:text;not null;default:'MEDIUM'" json:"priority"`
	DueAt           *time.Time   `json:"due_at"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	CompletedAt     *time.Time   `json:"completed_at"`

	Workspace  *Workspace `gorm:"foreignKey:WorkspaceID" json:"workspace,omitempty"`
	AssignedTo *User      `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
	CreatedBy  *User      `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

// IsOverdue reports whether the task is past due and still open. Terminal
// tasks are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueAt != nil && t.DueAt.Before(now) && !t.Status.IsTerminal()
}
