package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveType string

const (
	LeaveCasual LeaveType = "casual"
	LeaveSick   LeaveType = "sick"
	LeaveEarned LeaveType = "earned"
	LeaveUnpaid LeaveType = "unpaid"
)

func ValidLeaveType(t LeaveType) bool {
	switch t {
	case LeaveCasual, LeaveSick, LeaveEarned, LeaveUnpaid:
		return true
	}
	return false
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// LeaveRequest is immutable once approved or rejected; there is no
// cancellation or resubmission path.
type LeaveRequest struct {
	ID         string      `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	EmployeeID string      `gorm:"not null;size:36;index" json:"employee_id"`
	Employee   *Employee   `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	LeaveType  LeaveType   `gorm:"not null;size:20" json:"leave_type"`
	StartDate  time.Time   `gorm:"not null;type:date" json:"start_date"`
	EndDate    time.Time   `gorm:"not null;type:date" json:"end_date"`
	Reason     string      `gorm:"not null;size:500" json:"reason"`
	DaysCount  int         `gorm:"not null" json:"days_count"`
	IsPaid     bool        `gorm:"not null" json:"is_paid"`
	Status     LeaveStatus `gorm:"not null;size:20;default:pending" json:"status"`
	ApprovedBy *string     `gorm:"size:36" json:"approved_by"`
	ApprovedAt *time.Time  `json:"approved_at"`
}

func (l *LeaveRequest) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
