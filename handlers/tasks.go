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

type TaskHandler struct {
	db *gorm.DB
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{db: db}
}

// List returns tasks assigned to the caller; admin and manager see all.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	query := h.db.Preload("Assignee").Order("created_at desc")
	if !user.CanManageEmployees() {
		employee, err := employeeForUser(h.db, user)
		if err != nil {
			respondJSON(w, http.StatusOK, map[string]interface{}{"linked": false, "tasks": []models.Task{}})
			return
		}
		query = query.Where("assigned_to = ?", employee.ID)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AssignedTo  *string `json:"assigned_to"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"due_date"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.Title == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}

	priority := models.TaskPriority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		AssignedBy:  &user.ID,
		Priority:    priority,
		Status:      models.TaskPending,
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "due_date must be in YYYY-MM-DD format"})
			return
		}
		d := service.DateOnly(due)
		task.DueDate = &d
	}

	if err := h.db.Create(&task).Error; err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, task)
}

type updateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status"`
}

// UpdateStatus moves a task between pending, in_progress and completed.
// Allowed for the assignee, admin and manager.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var task models.Task
	if err := h.db.First(&task, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(w, service.ErrNotFound)
			return
		}
		respondError(w, err)
		return
	}

	if !user.CanManageEmployees() {
		employee, err := employeeForUser(h.db, user)
		if err != nil || task.AssignedTo == nil || *task.AssignedTo != employee.ID {
			respondError(w, service.ErrForbidden)
			return
		}
	}

	var req updateTaskStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if !models.ValidTaskStatus(req.Status) {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "status must be pending, in_progress or completed"})
		return
	}

	task.Status = req.Status
	if req.Status == models.TaskCompleted {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	if err := h.db.Save(&task).Error; err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, task)
}
