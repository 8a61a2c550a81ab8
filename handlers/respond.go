package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"staffhub/models"
	"staffhub/service"

	"gorm.io/gorm"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps service errors to HTTP statuses. Unknown errors pass
// through with their upstream message; this is an internal tool.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidRole):
		status = http.StatusBadRequest
	case service.IsPolicyViolation(err):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrTargetIsAdmin):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidStateTransition):
		status = http.StatusConflict
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return service.ErrValidation
	}
	return nil
}

// employeeForUser resolves the employee record linked to an account.
// ErrNotFound means the account is not linked to an employee yet.
func employeeForUser(db *gorm.DB, user *models.User) (*models.Employee, error) {
	var employee models.Employee
	err := db.Where("user_id = ?", user.ID).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func respondNotLinked(w http.ResponseWriter) {
	respondJSON(w, http.StatusNotFound, map[string]string{
		"error": "your account is not linked to an employee record, contact an administrator",
	})
}
