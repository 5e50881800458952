package models

import (
	"time"
)

// User is an account that owns athletes and teams
type User struct {
	BaseModel
	Email          string     `json:"email" gorm:"uniqueIndex;not null;size:40"`
	PasswordHash   string     `json:"-" gorm:"not null"`
	Username       string     `json:"username" gorm:"not null;size:25"`
	Token          string     `json:"-" gorm:"size:1024"`
	Location       string     `json:"location,omitempty" gorm:"size:50"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	Avatar         string     `json:"avatar,omitempty" gorm:"size:500"`
	AvatarPublicID string     `json:"-" gorm:"size:200"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
