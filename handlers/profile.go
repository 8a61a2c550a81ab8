package handlers

import (
	"net/http"

	"staffhub/middleware"

	"gorm.io/gorm"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// Me returns the caller's account and linked employee record. An unlinked
// account is an informational state, not an error.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	employee, err := employeeForUser(h.db, user)
	if err != nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"user":   user,
			"linked": false,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":     user,
		"linked":   true,
		"employee": employee,
	})
}

type updateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// UpdateMe lets the caller edit their own display fields. Organizational
// attributes stay admin/manager-only through the employee endpoints.
func (h *ProfileHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if req.FullName != "" {
		user.FullName = req.FullName
		if err := h.db.Save(user).Error; err != nil {
			respondError(w, err)
			return
		}
	}

	if employee, err := employeeForUser(h.db, user); err == nil {
		changed := false
		if req.FullName != "" {
			employee.FullName = req.FullName
			changed = true
		}
		if req.Phone != "" {
			employee.Phone = req.Phone
			changed = true
		}
		if changed {
			if err := h.db.Save(employee).Error; err != nil {
				respondError(w, err)
				return
			}
		}
	}

	h.Me(w, r)
}
