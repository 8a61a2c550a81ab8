package service_test

import (
	"testing"
	"time"

	"staffhub/models"
	"staffhub/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Tuesday, 2025-06-10. Leave starts are picked relative to this.
var leaveNow = time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)

func newLeaveService(db *gorm.DB) *service.LeaveService {
	return service.NewLeaveService(db, service.DefaultLeavePolicy())
}

func seedLeave(t *testing.T, db *gorm.DB, employeeID string, start, end time.Time, leaveType models.LeaveType, status models.LeaveStatus) *models.LeaveRequest {
	t.Helper()
	leave := &models.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     "seeded",
		DaysCount:  int(end.Sub(start).Hours()/24) + 1,
		IsPaid:     leaveType != models.LeaveUnpaid,
		Status:     status,
	}
	require.NoError(t, db.Create(leave).Error)
	return leave
}

func TestSubmitLeave_ComputesDaysAndPaidFlag(t *testing.T) {
	db := newTestDB(t)
	emp := createEmployee(t, db, "EMP001")
	svc := newLeaveService(db)

	leave, err := svc.Submit(service.SubmitLeaveInput{
		EmployeeID: emp.ID,
		LeaveType:  models.LeaveCasual,
		StartDate:  date(2025, time.June, 15),
		EndDate:    date(2025, time.June, 17),
		Reason:     "family function",
	}, leaveNow)

	require.NoError(t, err)
	assert.Equal(t, 3, leave.DaysCount)
	assert.True(t, leave.IsPaid)
	assert.Equal(t, models.LeavePending, leave.Status)
	assert.Nil(t, leave.ApprovedBy)
}

func TestSubmitLeave_SingleDayCountsOne(t *testing.T) {
	db := newTestDB(t)
	emp := createEmployee(t, db, "EMP001")
	svc := newLeaveService(db)

	leave, err := svc.Submit(service.SubmitLeaveInput{
		EmployeeID: emp.ID,
		LeaveType:  models.LeaveSick,
		StartDate:  date(2025, time.June, 16),
		EndDate:    date(2025, time.June, 16),
		Reason:     "doctor visit",
	}, leaveNow)

	require.NoError(t, err)
	assert.Equal(t, 1, leave.DaysCount)
}

func TestSubmitLeave_UnpaidFlag(t *testing.T) {
	db := newTestDB(t)
	emp := createEmployee(t, db, "EMP001")
	svc := newLeaveService(db)

	leave, err := svc.Submit(service.SubmitLeaveInput{
		EmployeeID: emp.ID,
		LeaveType:  models.LeaveUnpaid,
		StartDate:  date(2025, time.June, 16),
		EndDate:    date(2025, time.June, 17),
		Reason:     "personal",
	}, leaveNow)

	require.NoError(t, err)
	assert.False(t, leave.IsPaid)
}

func TestSubmitLeave_ValidationFailures(t *testing.T) {
	db := newTestDB(t)
	emp := createEmployee(t, db, "EMP001")
	svc := newLeaveService(db)

	tests := []struct {
		name string
		in   service.SubmitLeaveInput
	}{
		{"missing reason", service.SubmitLeaveInput{
			EmployeeID: emp.ID, LeaveType: models.LeaveCasual,
			StartDate: date(2025, time.June, 16), EndDate: date(2025, time.June, 17),
		}},
		{"unknown leave type", service.SubmitLeaveInput{
			EmployeeID: emp.ID, LeaveType: "sabbatical",
			StartDate: date(2025, time.June, 16), EndDate: date(2025, time.June, 17), Reason: "x",
		}},
		{"end before start", service.SubmitLeaveInput{
			EmployeeID: emp.ID, LeaveType: models.LeaveCasual,
			StartDate: date(2025, time.June, 17), EndDate: date(2025, time.June, 16), Reason: "x",
		}},
		{"missing employee", service.SubmitLeaveInput{
			LeaveType: models.LeaveCasual,
			StartDate: date(2025, time.June, 16), EndDate: date(2025, time.June, 17), Reason: "x",
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(tc.in, leaveNow)
			assert.ErrorIs(t, err, service.ErrValidation)
		})
	}
}

func TestSubmitLeave_AdvanceNotice(t *testing.T) {
	db := newTestDB(t)
	emp := createEmployee(t, db, "EMP001")
	svc := newLeaveService(db)

	// 2 calendar days ahead: rejected regardless of other fields.
	_, err := svc.Submit(service.SubmitLeaveInput{
		EmployeeID: emp.ID,
		LeaveType:  models.LeaveCasual,
		StartDate:  date(2025, time.June, 12),
		EndDate:    date(2025, time.June, 12),
		Reason:     "short notice",
	}, leaveNow)
	assert.ErrorIs(t, err, service.ErrAdvanceNotice)

	// Exactly 3 calendar days ahead: allowed.
	_, err = svc.Submit(service.SubmitLeaveInput{
		EmployeeID: emp.ID,
		LeaveType:  models.LeaveCasual,
		StartDate:  date(2025, time.June, 13),
		EndDate:    date(2025, time.June, 13),
		Reason:     "on the boundary",
	}, leaveNow)
	assert.NoError(t, err)
}

func TestSubmitLeave_MonthlyPaidQuota(t *testing.T) {
	db := newTestDB(t)
	emp := createEmployee(t, db, "EMP001")
	svc := newLeaveService(db)

	// Two paid leaves already this month, one pending and one approved,
	// each in a different week from the new request.
	seedLeave(t, db, emp.ID, date(2025, time.June, 16), date(2025, time.June, 16), models.LeaveCasual, models.LeavePending)
	seedLeave(t, db, emp.ID, date(2025, time.June, 23), date(2025, time.June, 23), models.LeaveSick, models.LeaveApproved)

	_, err := svc.Submit(service.SubmitLeaveInput{
		EmployeeID: emp.ID,
		LeaveType:  models.LeaveEarned,
		StartDate:  date(2025, time.June, 30),
		EndDate:    date(2025, time.June, 30),
		Reason:     "third paid leave",
	}, leaveNow)
	assert.ErrorIs(t, err, service.ErrQuotaExceeded)

	// Unpaid leave is exempt from the paid quota.
	leave, err := svc.Submit(service.SubmitLeaveInput{
		EmployeeID: emp.ID,
		LeaveType:  models.LeaveUnpaid,
		StartDate:  date(2025, time.June, 30),
		EndDate:    date(2025, time.June, 30),
		Reason:     "unpaid instead",
	}, leaveNow)
	require.NoError(t, err)
	assert.False(t, leave.IsPaid)
}

func TestSubmitLeave_RejectedLeavesDoNotCountTowardQuota(t *testing.T) {
	db := newTestDB(t)
	emp := createEmployee(t, db, "EMP001")
	svc := newLeaveService(db)

	seedLeave(t, db, emp.ID, date(2025, time.June, 16), date(2025, time.June, 16), models.LeaveCasual, models.LeaveRejected)
	seedLeave(t, db, emp.ID, date(2025, time.June, 23), date(2025, time.June, 23), models.LeaveSick, models.LeaveRejected)

	_, err := svc.Submit(service.SubmitLeaveInput{
		EmployeeID: emp.ID,
		LeaveType:  models.LeaveCasual,
		StartDate:  date(2025, time.June, 30),
		EndDate:    date(2025, time.June, 30),
		Reason:     "quota has room",
	}, leaveNow)
	assert.NoError(t, err)
}

func TestSubmitLeave_WeeklyLimit(t *testing.T) {
	db := newTestDB(t)
	emp := createEmployee(t, db, "EMP001")
	svc := newLeaveService(db)

	// A pending request starting Wednesday June 18.
	seedLeave(t, db, emp.ID, date(2025, time.June, 18), date(2025, time.June, 18), models.LeaveCasual, models.LeavePending)

	// Friday June 20 falls in the same Monday-based week. Unpaid type, so
	// the quota rule cannot mask the weekly one.
	_, err := svc.Submit(service.SubmitLeaveInput{
		EmployeeID: emp.ID,
		LeaveType:  models.LeaveUnpaid,
		StartDate:  date(2025, time.June, 20),
		EndDate:    date(2025, time.June, 20),
		Reason:     "same week",
	}, leaveNow)
	assert.ErrorIs(t, err, service.ErrWeeklyLimit)

	// Monday June 23 starts the next week.
	_, err = svc.Submit(service.SubmitLeaveInput{
		EmployeeID: emp.ID,
		LeaveType:  models.LeaveUnpaid,
		StartDate:  date(2025, time.June, 23),
		EndDate:    date(2025, time.June, 23),
		Reason:     "next week",
	}, leaveNow)
	assert.NoError(t, err)
}

func TestSubmitLeave_QuotaScopedToStartDateMonth(t *testing.T) {
	db := newTestDB(t)
	emp := createEmployee(t, db, "EMP001")
	svc := newLeaveService(db)

	// June is full, but a July request opens a fresh window.
	seedLeave(t, db, emp.ID, date(2025, time.June, 16), date(2025, time.June, 16), models.LeaveCasual, models.LeaveApproved)
	seedLeave(t, db, emp.ID, date(2025, time.June, 23), date(2025, time.June, 23), models.LeaveSick, models.LeaveApproved)

	leave, err := svc.Submit(service.SubmitLeaveInput{
		EmployeeID: emp.ID,
		LeaveType:  models.LeaveCasual,
		StartDate:  date(2025, time.July, 7),
		EndDate:    date(2025, time.July, 8),
		Reason:     "new month, new quota",
	}, leaveNow)
	require.NoError(t, err)
	assert.Equal(t, 2, leave.DaysCount)
}

func TestSubmitLeave_OtherEmployeesDoNotInterfere(t *testing.T) {
	db := newTestDB(t)
	emp := createEmployee(t, db, "EMP001")
	other := createEmployee(t, db, "EMP002")
	svc := newLeaveService(db)

	seedLeave(t, db, other.ID, date(2025, time.June, 16), date(2025, time.June, 16), models.LeaveCasual, models.LeavePending)

	_, err := svc.Submit(service.SubmitLeaveInput{
		EmployeeID: emp.ID,
		LeaveType:  models.LeaveCasual,
		StartDate:  date(2025, time.June, 16),
		EndDate:    date(2025, time.June, 16),
		Reason:     "colleague's leave is not mine",
	}, leaveNow)
	assert.NoError(t, err)
}
