package handlers

import (
	"net/http"

	"staffhub/middleware"
	"staffhub/models"
	"staffhub/service"
)

// AdminHandler backs the privileged user-provisioning endpoints. The admin
// check happens inside the service against the caller's stored role, not
// against anything the client sent.
type AdminHandler struct {
	users *service.UserService
}

func NewAdminHandler(users *service.UserService) *AdminHandler {
	return &AdminHandler{users: users}
}

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUserFromContext(r.Context())

	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.users.CreateUser(actor, req.Email, req.Password, req.FullName, models.Role(req.Role))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user": map[string]string{
			"id":       user.ID,
			"email":    user.Email,
			"fullName": user.FullName,
			"role":     string(user.Role),
		},
	})
}

type updateUserRoleRequest struct {
	UserID  string `json:"userId"`
	NewRole string `json:"newRole"`
}

func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUserFromContext(r.Context())

	var req updateUserRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.users.UpdateUserRole(actor, req.UserID, models.Role(req.NewRole))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"userId":  user.ID,
		"newRole": string(user.Role),
	})
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUserFromContext(r.Context())

	users, err := h.users.ListUsers(actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}
