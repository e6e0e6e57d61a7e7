package models

import (
	"time"
)

type UserRole string

const (
	RoleStandard  UserRole = "standard"
	RoleModerator UserRole = "moderator"
)

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // hex-encoded bcrypt hash
	Role      UserRole  `json:"role" gorm:"size:20;not null;default:'standard'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
