package handlers

import (
	"net/http"

	"staffhub/config"
	"staffhub/middleware"
	"staffhub/service"
)

type AuthHandler struct {
	config *config.Config
	users  *service.UserService
}

func NewAuthHandler(cfg *config.Config, users *service.UserService) *AuthHandler {
	return &AuthHandler{config: cfg, users: users}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		// Do not leak whether the email exists.
		respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(user, h.config.JWTExpiration)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}
