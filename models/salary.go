package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SalaryStatus string

const (
	SalaryPending SalaryStatus = "pending"
	SalaryPaid    SalaryStatus = "paid"
)

// SalaryRecord is one payroll row per (employee, month, year).
type SalaryRecord struct {
	ID          string       `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	EmployeeID  string       `gorm:"not null;size:36;index:idx_salary_employee_period,unique" json:"employee_id"`
	Employee    *Employee    `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Month       int          `gorm:"not null;index:idx_salary_employee_period,unique" json:"month"`
	Year        int          `gorm:"not null;index:idx_salary_employee_period,unique" json:"year"`
	BasicSalary float64      `gorm:"not null" json:"basic_salary"`
	Allowances  float64      `json:"allowances"`
	Deductions  float64      `json:"deductions"`
	NetSalary   float64      `gorm:"not null" json:"net_salary"`
	Status      SalaryStatus `gorm:"not null;size:20;default:pending" json:"status"`
	PaidAt      *time.Time   `json:"paid_at"`
}

func (s *SalaryRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
