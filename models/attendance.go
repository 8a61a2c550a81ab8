package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendancePending AttendanceStatus = "pending"
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceHalfDay AttendanceStatus = "half_day"
)

// AttendanceRecord holds one row per (employee, calendar date). The composite
// unique index is the authoritative guard against double check-in: two
// concurrent check-ins may both pass the application-level existence check,
// but only one insert survives.
type AttendanceRecord struct {
	ID         string           `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	EmployeeID string           `gorm:"not null;size:36;index:idx_attendance_employee_date,unique" json:"employee_id"`
	Employee   *Employee        `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Date       time.Time        `gorm:"not null;type:date;index:idx_attendance_employee_date,unique" json:"date"`
	CheckIn    *time.Time       `json:"check_in"`
	CheckOut   *time.Time       `json:"check_out"`
	WorkHours  *float64         `json:"work_hours"`
	Status     AttendanceStatus `gorm:"not null;size:20;default:pending" json:"status"`
	Notes      string           `gorm:"size:500" json:"notes"`
	ApprovedBy *string          `gorm:"size:36" json:"approved_by"`
	ApprovedAt *time.Time       `json:"approved_at"`
}

func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Open reports whether the record is an open session: checked in, not yet
// checked out.
func (a *AttendanceRecord) Open() bool {
	return a.CheckIn != nil && a.CheckOut == nil
}
