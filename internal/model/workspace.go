// internal/model/workspace.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type PrivacyLevel string

const (
	PrivacyPrivate   PrivacyLevel = "PRIVATE"
	PrivacyPublic    PrivacyLevel = "PUBLIC"
	PrivacyProtected PrivacyLevel = "PROTECTED"
)

// Workspace is a collaboration space owning a membership list and tasks.
// Access is always membership-gated; PrivacyLevel is informational only.
type Workspace struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string       `gorm:"type:text;not null" json:"name"`
	Description  string       `gorm:"type:text" json:"description"`
	CreatorID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"creator_id"`
	IsActive     bool         `gorm:"not null;default:true" json:"is_active"`
	PrivacyLevel PrivacyLevel `gorm:"type:text;not null;default:'PRIVATE'" json:"privacy_level"`
	CreatedAt    time.Time    `json:"created_at"`
	LastUpdated  time.Time    `gorm:"autoUpdateTime" json:"last_updated"`

	Creator *User `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}
