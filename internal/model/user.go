// internal/model/user.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type UserType string

const (
	UserTypeStudent   UserType = "STUDENT"
	UserTypeProfessor UserType = "PROFESSOR"
	UserTypeAdmin     UserType = "ADMIN"
)

type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email             string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName         string    `gorm:"type:text;not null" json:"first_name"`
	LastName          string    `gorm:"type:text" json:"last_name"`
	UserType          UserType  `gorm:"type:text;not null;default:'STUDENT'" json:"user_type"`
	PasswordHash      string    `gorm:"type:text;not null" json:"-"`
	Verified          bool      `gorm:"not null;default:false" json:"verified"`
	VerificationToken *string   `gorm:"type:text" json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DisplayName is the name used in notifications and member listings.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
