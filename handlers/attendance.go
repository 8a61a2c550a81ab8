package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"staffhub/middleware"
	"staffhub/models"
	"staffhub/service"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

type AttendanceHandler struct {
	db         *gorm.DB
	attendance *service.AttendanceService
	approvals  *service.ApprovalService
}

func NewAttendanceHandler(db *gorm.DB, attendance *service.AttendanceService, approvals *service.ApprovalService) *AttendanceHandler {
	return &AttendanceHandler{db: db, attendance: attendance, approvals: approvals}
}

func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	employee, err := employeeForUser(h.db, user)
	if err != nil {
		respondNotLinked(w)
		return
	}

	record, err := h.attendance.CheckIn(employee.ID, time.Now())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, record)
}

func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	employee, err := employeeForUser(h.db, user)
	if err != nil {
		respondNotLinked(w)
		return
	}

	record, err := h.attendance.CheckOut(employee.ID, time.Now())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

// List returns the caller's own records. Admin and manager callers get all
// employees' records instead, filterable by month/year.
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	month, year := periodParams(r)

	if user.CanApprove() {
		records, err := h.attendance.ListAll(month, year)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, records)
		return
	}

	employee, err := employeeForUser(h.db, user)
	if err != nil {
		// Degrade to an informational empty state rather than an error.
		respondJSON(w, http.StatusOK, map[string]interface{}{"linked": false, "records": []models.AttendanceRecord{}})
		return
	}

	records, err := h.attendance.ListForEmployee(employee.ID, month, year)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

type decideRequest struct {
	Decision service.Decision `json:"decision"`
}

func (h *AttendanceHandler) Decide(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req decideRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	record, err := h.approvals.DecideAttendance(chi.URLParam(r, "id"), req.Decision, user, time.Now())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

// ExportCSV writes a month's attendance as CSV, for payroll preparation.
func (h *AttendanceHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	month, year := periodParams(r)
	if month == 0 || year == 0 {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "month and year are required"})
		return
	}

	records, err := h.attendance.ListAll(month, year)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=attendance_%d_%02d.csv", year, month))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"Employee", "Code", "Date", "Check In", "Check Out", "Hours", "Status"})
	for _, rec := range records {
		name, code := "", ""
		if rec.Employee != nil {
			name = rec.Employee.FullName
			code = rec.Employee.EmployeeCode
		}
		checkIn, checkOut, hours := "", "", ""
		if rec.CheckIn != nil {
			checkIn = rec.CheckIn.Format("15:04")
		}
		if rec.CheckOut != nil {
			checkOut = rec.CheckOut.Format("15:04")
		}
		if rec.WorkHours != nil {
			hours = fmt.Sprintf("%.2f", *rec.WorkHours)
		}
		writer.Write([]string{name, code, rec.Date.Format("2006-01-02"), checkIn, checkOut, hours, string(rec.Status)})
	}
}

func periodParams(r *http.Request) (month, year int) {
	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && m >= 1 && m <= 12 {
		month = m
	}
	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && y >= 2000 && y <= 2100 {
		year = y
	}
	return month, year
}
