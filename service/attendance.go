package service

import (
	"errors"
	"fmt"
	"time"

	"staffhub/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

// CheckIn opens today's attendance session. The existence check is advisory;
// the (employee_id, date) unique index decides the race when two check-ins
// arrive at once, and the losing insert is reported as ErrAlreadyCheckedIn.
func (s *AttendanceService) CheckIn(employeeID string, now time.Time) (*models.AttendanceRecord, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employee is required", ErrValidation)
	}

	day := DateOnly(now)

	var count int64
	if err := s.db.Model(&models.AttendanceRecord{}).
		Where("employee_id = ? AND date = ?", employeeID, day).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyCheckedIn
	}

	checkIn := now
	record := models.AttendanceRecord{
		EmployeeID: employeeID,
		Date:       day,
		CheckIn:    &checkIn,
		Status:     models.AttendancePending,
	}
	if err := s.db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}
	return &record, nil
}

// CheckOut closes today's open session and computes worked hours, rounded to
// two decimal places. Sessions never span midnight; both times fall on the
// same calendar day.
func (s *AttendanceService) CheckOut(employeeID string, now time.Time) (*models.AttendanceRecord, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employee is required", ErrValidation)
	}

	day := DateOnly(now)

	var record models.AttendanceRecord
	err := s.db.Where("employee_id = ? AND date = ?", employeeID, day).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoOpenSession
		}
		return nil, err
	}
	if !record.Open() {
		return nil, ErrNoOpenSession
	}

	checkOut := now
	hours, _ := decimal.NewFromFloat(checkOut.Sub(*record.CheckIn).Hours()).Round(2).Float64()

	record.CheckOut = &checkOut
	record.WorkHours = &hours
	if err := s.db.Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListForEmployee returns the employee's records for a month, newest first.
// Zero month/year means no period filter.
func (s *AttendanceService) ListForEmployee(employeeID string, month, year int) ([]models.AttendanceRecord, error) {
	query := s.db.Where("employee_id = ?", employeeID)
	query = applyPeriodFilter(query, month, year)

	var records []models.AttendanceRecord
	err := query.Order("date desc").Find(&records).Error
	return records, err
}

// ListAll returns every employee's records for a month, for approvers.
func (s *AttendanceService) ListAll(month, year int) ([]models.AttendanceRecord, error) {
	query := applyPeriodFilter(s.db.Preload("Employee"), month, year)

	var records []models.AttendanceRecord
	err := query.Order("date desc").Find(&records).Error
	return records, err
}

func applyPeriodFilter(query *gorm.DB, month, year int) *gorm.DB {
	if month >= 1 && month <= 12 && year > 0 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		return query.Where("date >= ? AND date < ?", start, end)
	}
	return query
}
