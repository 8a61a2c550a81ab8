package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ValidAssignableRole reports whether a role may be granted through the
// user-management endpoints. Admin is seeded once and never assigned.
func ValidAssignableRole(r Role) bool {
	return r == RoleEmployee || r == RoleManager
}

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	FullName     string    `gorm:"not null;size:200" json:"full_name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"not null;size:20" json:"role"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// CanApprove reports whether the user may transition pending attendance or
// leave records to a terminal state.
func (u *User) CanApprove() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

// CanManageEmployees covers employee directory and salary mutations.
func (u *User) CanManageEmployees() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}
