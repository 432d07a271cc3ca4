package models

import (
	"github.com/google/uuid"
)

// Profile is the stored identity of a user of the back office.
// Role and TeamID together determine the authorization scope of every call.
type Profile struct {
	BaseModel
	DisplayName  string     `json:"display_name" gorm:"size:100;not null"`
	Email        string     `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	Role         Role       `json:"role" gorm:"type:varchar(32);not null;default:'pending_approval';index"`
	TeamID       *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
