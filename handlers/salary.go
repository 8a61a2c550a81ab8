package handlers

import (
	"errors"
	"net/http"
	"time"

	"staffhub/middleware"
	"staffhub/models"
	"staffhub/service"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

type SalaryHandler struct {
	db *gorm.DB
}

func NewSalaryHandler(db *gorm.DB) *SalaryHandler {
	return &SalaryHandler{db: db}
}

// My returns the caller's own salary history.
func (h *SalaryHandler) My(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	employee, err := employeeForUser(h.db, user)
	if err != nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{"linked": false, "records": []models.SalaryRecord{}})
		return
	}

	var records []models.SalaryRecord
	if err := h.db.Where("employee_id = ?", employee.ID).
		Order("year desc, month desc").Find(&records).Error; err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// All returns every salary record, for admin and manager.
func (h *SalaryHandler) All(w http.ResponseWriter, r *http.Request) {
	query := h.db.Preload("Employee").Order("year desc, month desc")
	if month, year := periodParams(r); month > 0 && year > 0 {
		query = query.Where("month = ? AND year = ?", month, year)
	}

	var records []models.SalaryRecord
	if err := query.Find(&records).Error; err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

type salaryRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	BasicSalary float64 `json:"basic_salary"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
}

func (h *SalaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req salaryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if req.EmployeeID == "" || req.Month < 1 || req.Month > 12 || req.Year < 2000 || req.BasicSalary <= 0 {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "employee_id, month, year and a positive basic_salary are required"})
		return
	}

	record := models.SalaryRecord{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		NetSalary:   req.BasicSalary + req.Allowances - req.Deductions,
		Status:      models.SalaryPending,
	}
	if err := h.db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "salary record for that employee and period already exists"})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, record)
}

// MarkPaid stamps a pending salary record as paid.
func (h *SalaryHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var record models.SalaryRecord
	if err := h.db.First(&record, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, service.ErrNotFound)
			return
		}
		respondError(w, err)
		return
	}

	if record.Status == models.SalaryPaid {
		respondError(w, service.ErrInvalidStateTransition)
		return
	}

	now := time.Now()
	record.Status = models.SalaryPaid
	record.PaidAt = &now
	if err := h.db.Save(&record).Error; err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}
