package handlers

import (
	"net/http"
	"time"

	"staffhub/middleware"
	"staffhub/models"

	"gorm.io/gorm"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Summary returns the counts the dashboard widgets display: the caller's own
// month so far, plus pending-approval totals for admin and manager.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	summary := map[string]interface{}{"linked": false}

	if employee, err := employeeForUser(h.db, user); err == nil {
		var present, absent, pendingAttendance, myPendingLeaves int64
		base := h.db.Model(&models.AttendanceRecord{}).
			Where("employee_id = ? AND date >= ? AND date < ?", employee.ID, monthStart, monthEnd)

		base.Session(&gorm.Session{}).Where("status = ?", models.AttendancePresent).Count(&present)
		base.Session(&gorm.Session{}).Where("status = ?", models.AttendanceAbsent).Count(&absent)
		base.Session(&gorm.Session{}).Where("status = ?", models.AttendancePending).Count(&pendingAttendance)
		h.db.Model(&models.LeaveRequest{}).
			Where("employee_id = ? AND status = ?", employee.ID, models.LeavePending).
			Count(&myPendingLeaves)

		summary = map[string]interface{}{
			"linked":             true,
			"present":            present,
			"absent":             absent,
			"pending_attendance": pendingAttendance,
			"pending_leaves":     myPendingLeaves,
		}
	}

	if user.CanApprove() {
		var pendingLeaveApprovals, pendingAttendanceApprovals, activeEmployees int64
		h.db.Model(&models.LeaveRequest{}).Where("status = ?", models.LeavePending).Count(&pendingLeaveApprovals)
		h.db.Model(&models.AttendanceRecord{}).Where("status = ?", models.AttendancePending).Count(&pendingAttendanceApprovals)
		h.db.Model(&models.Employee{}).Where("status = ?", models.EmployeeActive).Count(&activeEmployees)

		summary["approvals"] = map[string]int64{
			"pending_leaves":     pendingLeaveApprovals,
			"pending_attendance": pendingAttendanceApprovals,
			"active_employees":   activeEmployees,
		}
	}

	respondJSON(w, http.StatusOK, summary)
}
