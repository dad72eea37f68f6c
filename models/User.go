package models

import "gorm.io/gorm"

// User represents an administrator-managed account that can sign in to the panel.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string
	Role         string `gorm:"type:varchar(16);default:user;index"`
	Status       string `gorm:"type:varchar(16);default:active;index"`
	Phone        string
	Location     string
	Bio          string
}

// IsAdmin reports whether the account carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive reports whether the account may sign in.
func (u User) IsActive() bool {
	return u.Status == StatusActive
}
