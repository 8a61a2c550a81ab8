package handlers

import (
	"errors"
	"net/http"
	"time"

	"staffhub/models"
	"staffhub/service"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

type EmployeeHandler struct {
	db *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{db: db}
}

// List returns the employee directory. All authenticated roles may read it.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	query := h.db.Order("full_name asc")
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var employees []models.Employee
	if err := query.Find(&employees).Error; err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employees)
}

type employeeRequest struct {
	UserID        *string `json:"user_id"`
	EmployeeCode  string  `json:"employee_code"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Department    string  `json:"department"`
	Designation   string  `json:"designation"`
	DateOfJoining string  `json:"date_of_joining"`
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employeeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if req.EmployeeCode == "" || req.FullName == "" || req.Email == "" || req.Department == "" || req.Designation == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "employee_code, full_name, email, department and designation are required"})
		return
	}

	doj := service.DateOnly(time.Now())
	if req.DateOfJoining != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfJoining)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "date_of_joining must be in YYYY-MM-DD format"})
			return
		}
		doj = service.DateOnly(parsed)
	}

	employee := models.Employee{
		UserID:        req.UserID,
		EmployeeCode:  req.EmployeeCode,
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Department:    req.Department,
		Designation:   req.Designation,
		DateOfJoining: doj,
		Status:        models.EmployeeActive,
	}
	if err := h.db.Create(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "employee code or linked user already exists"})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee
	if err := h.db.First(&employee, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, service.ErrNotFound)
			return
		}
		respondError(w, err)
		return
	}

	var req employeeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if req.FullName != "" {
		employee.FullName = req.FullName
	}
	if req.Email != "" {
		employee.Email = req.Email
	}
	if req.Phone != "" {
		employee.Phone = req.Phone
	}
	if req.Department != "" {
		employee.Department = req.Department
	}
	if req.Designation != "" {
		employee.Designation = req.Designation
	}
	if req.UserID != nil {
		employee.UserID = req.UserID
	}

	if err := h.db.Save(&employee).Error; err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employee)
}

// Deactivate flips the employee to inactive. There is no hard delete.
func (h *EmployeeHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee
	if err := h.db.First(&employee, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, service.ErrNotFound)
			return
		}
		respondError(w, err)
		return
	}

	employee.Status = models.EmployeeInactive
	if err := h.db.Save(&employee).Error; err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employee)
}
