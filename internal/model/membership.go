// internal/model/membership.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type MemberRole string

const (
	RoleAdmin  MemberRole = "ADMIN"
	RoleMember MemberRole = "MEMBER"
	RoleViewer MemberRole = "VIEWER"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationDeclined InvitationStatus = "DECLINED"
	InvitationExpired  InvitationStatus = "EXPIRED"
)

// Membership is the (workspace, user) relationship row. At most one row
// exists per pair; the composite unique index makes a duplicate insert a
// constraint violation rather than an upsert.
type Membership struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WorkspaceID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_workspace_user" json:"workspace_id"`
	UserID           uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_workspace_user" json:"user_id"`
	Role             MemberRole       `gorm:"type:text;not null;default:'MEMBER'" json:"role"`
	InvitationStatus InvitationStatus `gorm:"type:text;not null;default:'PENDING'" json:"invitation_status"`
	InvitedAt        time.Time        `json:"invited_at"`
	JoinedAt         *time.Time       `json:"joined_at"`
	InvitedByUserID  *uuid.UUID       `gorm:"type:uuid" json:"invited_by_user_id"`

	Workspace *Workspace `gorm:"foreignKey:WorkspaceID" json:"workspace,omitempty"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (m *Membership) IsAdmin() bool {
	return m.Role == RoleAdmin
}

func (m *Membership) IsAccepted() bool {
	return m.InvitationStatus == InvitationAccepted
}
