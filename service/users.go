package service

import (
	"errors"
	"fmt"
	"strings"

	"staffhub/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService performs the privileged user-provisioning operations. Both
// operations re-check the acting user's stored role; a client-asserted role
// never reaches this layer.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUser provisions a new account. Admin only; the new role is limited
// to employee or manager.
func (s *UserService) CreateUser(actor *models.User, email, password, fullName string, role models.Role) (*models.User, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admin can create users", ErrForbidden)
	}

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" || strings.TrimSpace(fullName) == "" || role == "" {
		return nil, fmt.Errorf("%w: email, password, fullName and role are required", ErrValidation)
	}
	if !models.ValidAssignableRole(role) {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: string(hashedPassword),
		Role:         role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already registered", ErrValidation)
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUserRole changes a user's role between employee and manager. Admin
// only; an admin's own role is immutable.
func (s *UserService) UpdateUserRole(actor *models.User, targetUserID string, newRole models.Role) (*models.User, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admin can update user roles", ErrForbidden)
	}
	if targetUserID == "" || newRole == "" {
		return nil, fmt.Errorf("%w: userId and newRole are required", ErrValidation)
	}
	if !models.ValidAssignableRole(newRole) {
		return nil, ErrInvalidRole
	}

	var target models.User
	if err := s.db.First(&target, "id = ?", targetUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, targetUserID)
		}
		return nil, err
	}
	if target.IsAdmin() {
		return nil, ErrTargetIsAdmin
	}

	target.Role = newRole
	if err := s.db.Save(&target).Error; err != nil {
		return nil, err
	}
	return &target, nil
}

// ListUsers returns all accounts, for the admin user-management view.
func (s *UserService) ListUsers(actor *models.User) ([]models.User, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admin can list users", ErrForbidden)
	}
	var users []models.User
	err := s.db.Order("created_at asc").Find(&users).Error
	return users, err
}

// Authenticate verifies credentials and returns the user.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrForbidden)
	}
	return &user, nil
}
