package service

import (
	"fmt"
	"strings"
	"time"

	"staffhub/models"

	"gorm.io/gorm"
)

// LeavePolicy holds the tunable leave rules.
type LeavePolicy struct {
	// AdvanceNoticeDays is the minimum number of calendar days between
	// submission and the leave's start date.
	AdvanceNoticeDays int
	// MonthlyPaidQuota caps pending-or-approved paid requests per calendar
	// month.
	MonthlyPaidQuota int
	// WeekStart anchors the one-leave-per-week window.
	WeekStart time.Weekday
}

func DefaultLeavePolicy() LeavePolicy {
	return LeavePolicy{
		AdvanceNoticeDays: 3,
		MonthlyPaidQuota:  2,
		WeekStart:         time.Monday,
	}
}

type LeaveService struct {
	db     *gorm.DB
	policy LeavePolicy
}

func NewLeaveService(db *gorm.DB, policy LeavePolicy) *LeaveService {
	return &LeaveService{db: db, policy: policy}
}

type SubmitLeaveInput struct {
	EmployeeID string
	LeaveType  models.LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
}

// Submit validates a new leave request and persists it in pending state.
// Quota and weekly-frequency checks are scoped to the request's start-date
// month: the submitted dates, not whatever month a client happens to be
// looking at, decide which window applies.
func (s *LeaveService) Submit(in SubmitLeaveInput, now time.Time) (*models.LeaveRequest, error) {
	if in.EmployeeID == "" || strings.TrimSpace(in.Reason) == "" || in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: employee, leave type, dates and reason are required", ErrValidation)
	}
	if !models.ValidLeaveType(in.LeaveType) {
		return nil, fmt.Errorf("%w: unknown leave type %q", ErrValidation, in.LeaveType)
	}

	start := DateOnly(in.StartDate)
	end := DateOnly(in.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date must not precede start date", ErrValidation)
	}

	if calendarDaysUntil(now, start) < s.policy.AdvanceNoticeDays {
		return nil, fmt.Errorf("%w: at least %d days of notice required", ErrAdvanceNotice, s.policy.AdvanceNoticeDays)
	}

	monthStart, monthEnd := monthBounds(start)
	var existing []models.LeaveRequest
	err := s.db.
		Where("employee_id = ? AND start_date >= ? AND start_date < ?", in.EmployeeID, monthStart, monthEnd).
		Find(&existing).Error
	if err != nil {
		return nil, err
	}

	isPaid := in.LeaveType != models.LeaveUnpaid

	if isPaid {
		paidCount := 0
		for _, l := range existing {
			if l.IsPaid && (l.Status == models.LeavePending || l.Status == models.LeaveApproved) {
				paidCount++
			}
		}
		if paidCount >= s.policy.MonthlyPaidQuota {
			return nil, fmt.Errorf("%w: %d paid leaves already requested this month", ErrQuotaExceeded, paidCount)
		}
	}

	week := weekStartOf(start, s.policy.WeekStart)
	for _, l := range existing {
		if weekStartOf(l.StartDate, s.policy.WeekStart).Equal(week) {
			return nil, fmt.Errorf("%w: a leave starting %s already exists in that week", ErrWeeklyLimit, l.StartDate.Format("2006-01-02"))
		}
	}

	leave := models.LeaveRequest{
		EmployeeID: in.EmployeeID,
		LeaveType:  in.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     strings.TrimSpace(in.Reason),
		DaysCount:  calendarDaysUntil(start, end) + 1,
		IsPaid:     isPaid,
		Status:     models.LeavePending,
	}
	if err := s.db.Create(&leave).Error; err != nil {
		return nil, err
	}
	return &leave, nil
}

// ListForEmployee returns the employee's leave history, newest first.
func (s *LeaveService) ListForEmployee(employeeID string) ([]models.LeaveRequest, error) {
	var leaves []models.LeaveRequest
	err := s.db.Where("employee_id = ?", employeeID).Order("start_date desc").Find(&leaves).Error
	return leaves, err
}

// ListAll returns all leave requests, optionally filtered by status.
func (s *LeaveService) ListAll(status models.LeaveStatus) ([]models.LeaveRequest, error) {
	var leaves []models.LeaveRequest
	query := s.db.Preload("Employee").Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&leaves).Error
	return leaves, err
}
