package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

// Employee links an authentication principal to organizational attributes.
// UserID is nullable: an account may exist before an employee record is
// created for it, and vice versa. Employees are never hard-deleted; status
// flips to inactive instead.
type Employee struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	UserID        *string        `gorm:"uniqueIndex;size:36" json:"user_id"`
	EmployeeCode  string         `gorm:"uniqueIndex;not null;size:50" json:"employee_code"`
	FullName      string         `gorm:"not null;size:200" json:"full_name"`
	Email         string         `gorm:"not null;size:255" json:"email"`
	Phone         string         `gorm:"size:50" json:"phone"`
	Department    string         `gorm:"not null;size:100" json:"department"`
	Designation   string         `gorm:"not null;size:100" json:"designation"`
	DateOfJoining time.Time      `gorm:"not null;type:date" json:"date_of_joining"`
	Status        EmployeeStatus `gorm:"not null;size:20;default:active" json:"status"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
